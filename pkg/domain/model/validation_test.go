package model_test

import (
	"errors"
	"testing"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestValidationError_ListsEveryViolation(t *testing.T) {
	verr := &model.ValidationError{
		Violations: []model.Violation{
			{
				Kind:       types.ViolationDanglingReference,
				Collection: "capabilities",
				Record:     "fulfillment-excellence",
				Field:      "relatedCaseStudies",
				Value:      "ghost-study",
				Message:    "case study does not exist",
			},
			{
				Kind:       types.ViolationNonContiguousStep,
				Collection: "process",
				Record:     "#2",
				Field:      "step",
				Value:      "4",
				Message:    "expected step 3",
			},
		},
	}

	msg := verr.Error()
	gt.String(t, msg).Contains("2 violation(s)")
	gt.String(t, msg).Contains(`[dangling-reference] capabilities/fulfillment-excellence relatedCaseStudies "ghost-study"`)
	gt.String(t, msg).Contains(`[non-contiguous-step] process/#2 step "4": expected step 3`)

	gt.Array(t, verr.ByKind(types.ViolationDanglingReference)).Length(1)
	gt.Array(t, verr.ByKind(types.ViolationDuplicateID)).Length(0)
}

func TestValidationError_MatchesSentinelThroughWrap(t *testing.T) {
	verr := &model.ValidationError{Violations: []model.Violation{{Kind: types.ViolationDuplicateID}}}
	wrapped := goerr.Wrap(verr, "failed to load content", goerr.V("path", "kb.toml"))

	gt.Bool(t, errors.Is(wrapped, model.ErrValidation)).True()
	gt.Bool(t, errors.Is(wrapped, model.ErrNotFound)).False()

	var got *model.ValidationError
	gt.Bool(t, errors.As(wrapped, &got)).True()
	gt.Array(t, got.Violations).Length(1)
}

func TestAsymmetry_String(t *testing.T) {
	a := model.Asymmetry{
		CapabilityID: "integrated-operations",
		CaseStudyID:  "baby-food-crisis",
		DeclaredBy:   types.CollectionCapabilities,
	}
	gt.String(t, a.String()).Contains(`capability "integrated-operations" lists case study "baby-food-crisis"`)

	b := model.Asymmetry{
		CapabilityID: "orphan-asin-takeover",
		CaseStudyID:  "mason-jar-protection",
		DeclaredBy:   types.CollectionCaseStudies,
	}
	gt.String(t, b.String()).Contains(`case study "mason-jar-protection" lists capability "orphan-asin-takeover"`)
}
