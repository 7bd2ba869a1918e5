// Package main provides demo data seeding for the IOU platform.
//
// The command is idempotent: domains and objects are created with fixed
// identifiers and skipped when they already exist. Rules are upserted
// from the shipped YAML baseline. Analysis runs synchronously so a
// seeded database has entities, relationships and suggestions ready for
// exploration.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/internal/audit"
	"iou-platform.io/iou/internal/config"
	"iou-platform.io/iou/internal/extract"
	"iou-platform.io/iou/internal/graph"
	"iou-platform.io/iou/internal/infrastructure"
	"iou-platform.io/iou/internal/pipeline"
	"iou-platform.io/iou/internal/pkg/keylock"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/resolve"
	"iou-platform.io/iou/internal/rules"
	"iou-platform.io/iou/internal/suggest"
)

const seedActor = "seed"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()
	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	client := db.EntClient

	logger.Info("Starting data seeding...")

	if err := seedRules(ctx, cfg, client); err != nil {
		return fmt.Errorf("seed rules: %w", err)
	}
	if err := seedDomains(ctx, client); err != nil {
		return fmt.Errorf("seed domains: %w", err)
	}
	created, err := seedObjects(ctx, client)
	if err != nil {
		return fmt.Errorf("seed objects: %w", err)
	}

	// Analyze newly created objects synchronously so the graph and the
	// suggestion queue are populated before the command exits.
	pipe := newPipeline(cfg, client)
	for _, objectID := range created {
		if err := pipe.Process(ctx, objectID); err != nil {
			logger.Warn("seed analysis failed",
				zap.String("object_id", objectID),
				zap.Error(err),
			)
		}
	}

	logger.Info("Data seeding completed successfully",
		zap.Int("objects_analyzed", len(created)),
	)
	return nil
}

func newPipeline(cfg *config.Config, client *ent.Client) *pipeline.Pipeline {
	auditLogger := audit.NewLogger(client)
	resolver := resolve.New(
		resolve.NewEntStore(client),
		keylock.New(cfg.Analysis.KeylockShards),
		auditLogger,
	)
	builder := graph.NewBuilder(graph.NewEntStore(client), cfg.Analysis.CooccurrenceWindow)
	ruleRunner := rules.NewRunner(client, auditLogger, nil)
	suggestSvc := suggest.NewService(client, auditLogger, nil, cfg.Analysis.SuggestionApplyThreshold)
	return pipeline.New(client, extract.New(), resolver, builder, ruleRunner, suggestSvc, nil, nil)
}

func seedRules(ctx context.Context, cfg *config.Config, client *ent.Client) error {
	path := cfg.Analysis.RulesPath
	if path == "" {
		path = "config/rules.yaml"
	}
	specs, err := rules.LoadFile(path)
	if err != nil {
		return err
	}
	n, err := rules.Seed(ctx, client, specs)
	if err != nil {
		return err
	}
	logger.Info("rules seeded", zap.Int("created", n), zap.Int("total", len(specs)))
	return nil
}

// demoDomain is one seeded information domain.
type demoDomain struct {
	ID             string
	Name           string
	Description    string
	DomainType     string
	OrganizationID string
	OwnerUserID    string
}

func demoDomains() []demoDomain {
	return []demoDomain{
		{
			ID:             "dom-seed-woo-windpark",
			Name:           "Woo-verzoek windpark Flevoland",
			Description:    "Afhandeling van een Woo-verzoek over de besluitvorming rond het windpark in Flevoland.",
			DomainType:     "case",
			OrganizationID: "org-demo-provincie",
			OwnerUserID:    "user-demo-behandelaar",
		},
		{
			ID:             "dom-seed-energietransitie",
			Name:           "Programma energietransitie",
			Description:    "Programma voor de regionale energietransitie en duurzaamheidsdoelen.",
			DomainType:     "project",
			OrganizationID: "org-demo-provincie",
			OwnerUserID:    "user-demo-programmamanager",
		},
		{
			ID:             "dom-seed-beleid-duurzaamheid",
			Name:           "Beleidskader duurzaamheid",
			Description:    "Kaderstellend beleid voor duurzaamheid en circulaire economie.",
			DomainType:     "policy",
			OrganizationID: "org-demo-provincie",
			OwnerUserID:    "user-demo-beleidsadviseur",
		},
		{
			ID:             "dom-seed-kennis-omgevingswet",
			Name:           "Kennisdomein Omgevingswet",
			Description:    "Expertisedossier over de toepassing van de Omgevingswet.",
			DomainType:     "expertise",
			OrganizationID: "org-demo-provincie",
			OwnerUserID:    "user-demo-jurist",
		},
	}
}

func seedDomains(ctx context.Context, client *ent.Client) error {
	for _, d := range demoDomains() {
		exists, err := client.InformationDomain.Query().
			Where(informationdomain.ID(d.ID)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = client.InformationDomain.Create().
			SetID(d.ID).
			SetName(d.Name).
			SetDescription(d.Description).
			SetDomainType(informationdomain.DomainType(d.DomainType)).
			SetOrganizationID(d.OrganizationID).
			SetOwnerUserID(d.OwnerUserID).
			SetStatus(informationdomain.StatusActive).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create domain %s: %w", d.ID, err)
		}
		logger.Info("domain seeded", zap.String("domain_id", d.ID))
	}
	return nil
}

// demoObject is one seeded information object. Content is written so
// the extractor finds ministries, laws, places, policy themes, dates
// and amounts, which in turn feeds resolution and the graph.
type demoObject struct {
	ID             string
	DomainID       string
	ObjectType     string
	Title          string
	Description    string
	ContentText    string
	Classification string
	PrivacyLevel   string
	Tags           []string
}

func demoObjects() []demoObject {
	return []demoObject{
		{
			ID:         "obj-seed-woo-besluit",
			DomainID:   "dom-seed-woo-windpark",
			ObjectType: "decision",
			Title:      "Besluit op Woo-verzoek windpark Flevoland",
			Description: "Besluit op het verzoek om openbaarmaking van documenten over " +
				"de besluitvorming rond het windpark.",
			ContentText: "Op grond van de Wet open overheid besluit het college tot " +
				"gedeeltelijke openbaarmaking van de gevraagde documenten over het " +
				"windpark in Flevoland. Het Ministerie van Economische Zaken en Klimaat " +
				"is over dit besluit geïnformeerd. Persoonsgegevens zijn gelakt op grond " +
				"van artikel 5 lid 1 van de Algemene verordening gegevensbescherming. " +
				"Het besluit is genomen op 12 maart 2024.",
			Classification: "public",
		},
		{
			ID:         "obj-seed-woo-zienswijze",
			DomainID:   "dom-seed-woo-windpark",
			ObjectType: "email",
			Title:      "Zienswijze omwonenden windpark",
			Description: "E-mail met de zienswijze van omwonenden op het " +
				"voorgenomen besluit.",
			ContentText: "Geachte behandelaar, hierbij onze zienswijze op het voorgenomen " +
				"besluit over het windpark. De gemeente Almere heeft eerder aangegeven dat " +
				"de bereikbaarheid en leefbaarheid van het gebied onder druk staan. Wij " +
				"verzoeken u dit mee te wegen conform de Algemene wet bestuursrecht.",
			Classification: "internal",
			PrivacyLevel:   "personal",
		},
		{
			ID:         "obj-seed-energie-plan",
			DomainID:   "dom-seed-energietransitie",
			ObjectType: "document",
			Title:      "Uitvoeringsplan energietransitie 2024-2030",
			Description: "Uitvoeringsplan met maatregelen en budget voor de " +
				"regionale energietransitie.",
			ContentText: "Dit uitvoeringsplan beschrijft de maatregelen voor de " +
				"energietransitie in Noord-Holland en Flevoland. Voor de periode tot 2030 " +
				"is € 12.500.000 gereserveerd. Het Ministerie van Infrastructuur en " +
				"Waterstaat draagt bij aan de verduurzaming van het hoofdwegennet rond " +
				"Amsterdam en Haarlem. Duurzaamheid en klimaatadaptatie zijn leidende " +
				"thema's. Vastgesteld op 3 juni 2024.",
			Classification: "public",
			Tags:           []string{"energietransitie"},
		},
		{
			ID:         "obj-seed-beleid-kader",
			DomainID:   "dom-seed-beleid-duurzaamheid",
			ObjectType: "document",
			Title:      "Beleidskader duurzaamheid en circulaire economie",
			Description: "Kaderstellende notitie over duurzaamheid en circulaire " +
				"economie.",
			ContentText: "Het beleidskader sluit aan op de doelen van het Ministerie van " +
				"Binnenlandse Zaken en Koninkrijksrelaties voor een duurzame leefomgeving. " +
				"Circulaire economie en woningbouw worden in samenhang opgepakt met de " +
				"gemeenten Utrecht en Amersfoort. Onder de Omgevingswet worden de " +
				"instrumenten hiervoor geactualiseerd.",
			Classification: "public",
		},
		{
			ID:         "obj-seed-kennis-notitie",
			DomainID:   "dom-seed-kennis-omgevingswet",
			ObjectType: "document",
			Title:      "Juridische notitie toepassing Omgevingswet",
			Description: "Expertnotitie over de verhouding tussen de Omgevingswet " +
				"en de Archiefwet.",
			ContentText: "Deze notitie behandelt de verhouding tussen de Omgevingswet en de " +
				"Archiefwet bij de archivering van omgevingsdocumenten. Op grond van " +
				"artikel 3 van de Archiefwet geldt een zorgplicht voor de overheid. Het " +
				"Ministerie van Onderwijs, Cultuur en Wetenschap houdt toezicht op de " +
				"naleving. Digitalisering van de werkprocessen is hierbij randvoorwaardelijk.",
			Classification: "internal",
		},
	}
}

// seedObjects creates the demo objects and returns the ids of the ones
// actually created this run.
func seedObjects(ctx context.Context, client *ent.Client) ([]string, error) {
	var created []string
	for _, o := range demoObjects() {
		exists, err := client.InformationObject.Query().
			Where(informationobject.ID(o.ID)).
			Exist(ctx)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		create := client.InformationObject.Create().
			SetID(o.ID).
			SetDomainID(o.DomainID).
			SetObjectType(informationobject.ObjectType(o.ObjectType)).
			SetTitle(o.Title).
			SetDescription(o.Description).
			SetContentText(o.ContentText).
			SetMimeType("text/plain").
			SetCreatedBy(seedActor)
		if o.Classification != "" {
			create.SetClassification(informationobject.Classification(o.Classification))
		}
		if o.PrivacyLevel != "" {
			create.SetPrivacyLevel(informationobject.PrivacyLevel(o.PrivacyLevel))
		}
		if len(o.Tags) > 0 {
			create.SetTags(o.Tags)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("create object %s: %w", o.ID, err)
		}
		created = append(created, o.ID)
		logger.Info("object seeded", zap.String("object_id", o.ID))
	}
	return created, nil
}
