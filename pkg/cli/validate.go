package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/store"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

var (
	colorFail = color.New(color.FgRed, color.Bold)
	colorKind = color.New(color.FgRed)
	colorWarn = color.New(color.FgYellow)
	colorOK   = color.New(color.FgGreen, color.Bold)
)

func cmdValidate(kb *store.Once) *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Load the knowledge base and report every integrity violation",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := writerOf(c)

			s, err := kb.Get()
			if err != nil {
				var ve *model.ValidationError
				if errors.As(err, &ve) {
					printViolations(w, ve)
				}
				return err
			}

			printAsymmetries(w, s.Asymmetries())

			stats := s.Stats()
			_, _ = colorOK.Fprint(w, "OK")
			_, _ = fmt.Fprintf(w, " %d capabilities, %d case studies, %d service KPIs, %d glossary terms\n",
				stats.Capabilities, stats.CaseStudies, stats.ServiceKPIs, stats.Glossary)

			logging.From(ctx).Info("Knowledge base validation passed",
				"capabilities", stats.Capabilities,
				"case_studies", stats.CaseStudies,
				"asymmetries", stats.Asymmetries,
			)
			return nil
		},
	}
}

func printViolations(w io.Writer, ve *model.ValidationError) {
	_, _ = colorFail.Fprintf(w, "FAILED %d violation(s)\n", len(ve.Violations))
	for _, v := range ve.Violations {
		_, _ = colorKind.Fprintf(w, "  %-20s", v.Kind)
		_, _ = fmt.Fprintf(w, " %s/%s", v.Collection, v.Record)
		if v.Field != "" {
			_, _ = fmt.Fprintf(w, " %s", v.Field)
		}
		if v.Value != "" {
			_, _ = fmt.Fprintf(w, " %q", v.Value)
		}
		_, _ = fmt.Fprintf(w, ": %s\n", v.Message)
	}
}

func printAsymmetries(w io.Writer, asymmetries []model.Asymmetry) {
	if len(asymmetries) == 0 {
		return
	}
	_, _ = colorWarn.Fprintf(w, "WARN %d one-sided link(s) reconciled\n", len(asymmetries))
	for _, a := range asymmetries {
		_, _ = fmt.Fprintf(w, "  %s\n", a)
	}
}
