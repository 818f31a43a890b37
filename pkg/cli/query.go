package cli

import (
	"context"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/store"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// storeAction loads the knowledge base once and hands it to fn
func storeAction(kb *store.Once, fn func(ctx context.Context, c *cli.Command, s *store.Store) error) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		s, err := kb.Get()
		if err != nil {
			return err
		}
		return fn(ctx, c, s)
	}
}

func cmdShow(kb *store.Once) *cli.Command {
	show := func(name, usage string, get func(s *store.Store, key string) (any, error)) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: "<key>",
			Action: storeAction(kb, func(ctx context.Context, c *cli.Command, s *store.Store) error {
				key, err := requireArg(c, 0, name)
				if err != nil {
					return err
				}
				record, err := get(s, key)
				if err != nil {
					return err
				}
				return writeJSON(ctx, writerOf(c), record)
			}),
		}
	}

	return &cli.Command{
		Name:  "show",
		Usage: "Print one record as JSON",
		Commands: []*cli.Command{
			show("capability", "Show a capability by id", func(s *store.Store, key string) (any, error) {
				return s.Capability(types.CapabilityID(key))
			}),
			show("case-study", "Show a case study by id", func(s *store.Store, key string) (any, error) {
				return s.CaseStudy(types.CaseStudyID(key))
			}),
			show("glossary", "Show a glossary entry by exact term", func(s *store.Store, key string) (any, error) {
				return s.GlossaryTerm(types.Term(key))
			}),
			show("framework", "Show a framework block by key", func(s *store.Store, key string) (any, error) {
				return s.Framework(key)
			}),
		},
	}
}

func cmdList(kb *store.Once) *cli.Command {
	var category string
	var categoriesOnly bool

	return &cli.Command{
		Name:      "list",
		Usage:     "List a collection (capabilities, case-studies, glossary, team, process, service-kpis, frameworks)",
		ArgsUsage: "<collection>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Usage:       "Only records whose category matches exactly",
				Destination: &category,
			},
			&cli.BoolFlag{
				Name:        "categories",
				Usage:       "Print the distinct categories of the collection instead of records",
				Destination: &categoriesOnly,
			},
		},
		Action: storeAction(kb, func(ctx context.Context, c *cli.Command, s *store.Store) error {
			name, err := requireArg(c, 0, "collection")
			if err != nil {
				return err
			}
			w := writerOf(c)

			switch name {
			case "team":
				return writeJSON(ctx, w, s.Team())
			case "process":
				return writeJSON(ctx, w, s.Process())
			case "service-kpis", "serviceKPIs":
				return writeJSON(ctx, w, s.ServiceKPIs())
			case "frameworks":
				return writeJSON(ctx, w, s.Frameworks())
			}

			collection, ok := types.ParseCollection(name)
			if !ok {
				return goerr.Wrap(model.ErrUnknownCollection, "unknown collection", goerr.V(model.CollectionKey, name))
			}

			if categoriesOnly {
				categories, err := s.Categories(collection)
				if err != nil {
					return err
				}
				return writeJSON(ctx, w, categories)
			}

			if c.IsSet("category") {
				records, err := s.ListByCategory(collection, category)
				if err != nil {
					return err
				}
				return writeJSON(ctx, w, records)
			}

			switch collection {
			case types.CollectionCapabilities:
				return writeJSON(ctx, w, s.Capabilities())
			case types.CollectionCaseStudies:
				return writeJSON(ctx, w, s.CaseStudies())
			default:
				return writeJSON(ctx, w, s.Glossary())
			}
		}),
	}
}

func cmdRelated(kb *store.Once) *cli.Command {
	return &cli.Command{
		Name:      "related",
		Usage:     "List the records linked to a capability or a case study",
		ArgsUsage: "capability|case-study <id>",
		Action: storeAction(kb, func(ctx context.Context, c *cli.Command, s *store.Store) error {
			kind, err := requireArg(c, 0, "kind")
			if err != nil {
				return err
			}
			id, err := requireArg(c, 1, "id")
			if err != nil {
				return err
			}

			switch kind {
			case "capability":
				list, err := s.CaseStudiesForCapability(types.CapabilityID(id))
				if err != nil {
					return err
				}
				return writeJSON(ctx, writerOf(c), list)
			case "case-study":
				list, err := s.CapabilitiesForCaseStudy(types.CaseStudyID(id))
				if err != nil {
					return err
				}
				return writeJSON(ctx, writerOf(c), list)
			default:
				return goerr.Wrap(ErrInvalidArgument, "kind must be capability or case-study", goerr.V(ArgumentKey, kind))
			}
		}),
	}
}

func cmdKPISources(kb *store.Once) *cli.Command {
	return &cli.Command{
		Name:      "kpi-sources",
		Usage:     "List the service KPIs that cite a case study",
		ArgsUsage: "<case-study-id>",
		Action: storeAction(kb, func(ctx context.Context, c *cli.Command, s *store.Store) error {
			id, err := requireArg(c, 0, "case-study-id")
			if err != nil {
				return err
			}
			sources, err := s.KPISourcesByCaseStudy(types.CaseStudyID(id))
			if err != nil {
				return err
			}
			return writeJSON(ctx, writerOf(c), sources)
		}),
	}
}
