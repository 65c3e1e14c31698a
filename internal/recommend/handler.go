package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"incorply/internal/llm"
	"incorply/internal/order"
)

type Handler struct {
	orders  *order.Service
	service *Service
}

func NewHandler(orders *order.Service, service *Service) *Handler {
	return &Handler{orders: orders, service: service}
}

//
// --------------------------------------------------
// POST /orders/:id/recommendations/incorporation
// --------------------------------------------------
//

func (h *Handler) RecommendIncorporation(c *gin.Context) {
	st, ok := h.loadOrder(c)
	if !ok {
		return
	}

	if errs := order.ValidateNeedsAssessment(st.NeedsAssessment, h.orders.Catalog()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	advice, err := h.service.IncorporationAdvice(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation unavailable"})
		return
	}

	fingerprint := Fingerprint(IncorporationInputs(st))

	updated, err := h.orders.ApplyUpdateFn(c.Request.Context(), c.Param("id"), func(cur order.State) order.Patch {
		// The inputs may have moved on while the call was in flight; a stale
		// response is discarded instead of overwriting newer state.
		if Fingerprint(IncorporationInputs(cur)) != fingerprint {
			return order.Patch{}
		}

		best := toRecommendation(advice.BestRecommendation)
		alts := make([]order.Recommendation, 0, len(advice.AlternativeRecommendations))
		for _, rec := range advice.AlternativeRecommendations {
			alts = append(alts, toRecommendation(rec))
		}

		patch := order.Patch{
			Incorporation: &order.IncorporationPatch{
				BestRecommendation:         &best,
				AlternativeRecommendations: &alts,
			},
		}

		// Default the selection to the best recommendation, but never
		// overwrite a choice the user already made.
		if cur.Incorporation.Jurisdiction == "" {
			patch.Incorporation.Jurisdiction = &best.Jurisdiction
			patch.Incorporation.State = &best.State
			patch.Incorporation.CompanyType = &best.CompanyType
		}

		return patch
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advice": advice,
		"state":  updated,
	})
}

//
// --------------------------------------------------
// POST /orders/:id/recommendations/addons
// --------------------------------------------------
//

func (h *Handler) RecommendAddons(c *gin.Context) {
	st, ok := h.loadOrder(c)
	if !ok {
		return
	}

	if errs := order.ValidateNeedsAssessment(st.NeedsAssessment, h.orders.Catalog()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	advice, err := h.service.AddonAdvice(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation unavailable"})
		return
	}

	fingerprint := Fingerprint(AddonInputs(st, h.orders.Catalog()))

	updated, err := h.orders.ApplyUpdateFn(c.Request.Context(), c.Param("id"), func(cur order.State) order.Patch {
		if Fingerprint(AddonInputs(cur, h.orders.Catalog())) != fingerprint {
			return order.Patch{}
		}

		selections := make([]order.AddonSelection, len(cur.AddOns))
		copy(selections, cur.AddOns)
		for i := range selections {
			if reason, ok := advice.ReasoningByAddonID[selections[i].ID]; ok {
				r := reason
				selections[i].RecommendationReasoning = &r
			} else {
				selections[i].RecommendationReasoning = nil
			}
		}

		intro := advice.IntroText
		return order.Patch{
			AddOns:     &selections,
			AddonIntro: &intro,
		}
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advice": advice,
		"state":  updated,
	})
}

//
// --------------------------------------------------
// POST /orders/:id/recommendations/intro
// --------------------------------------------------
//

func (h *Handler) GenerateIntro(c *gin.Context) {
	st, ok := h.loadOrder(c)
	if !ok {
		return
	}

	if errs := order.ValidateNeedsAssessment(st.NeedsAssessment, h.orders.Catalog()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	intro, err := h.service.Intro(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation unavailable"})
		return
	}

	updated, err := h.orders.ApplyPatch(c.Request.Context(), c.Param("id"), order.Patch{
		Incorporation: &order.IncorporationPatch{RecommendationIntro: &intro},
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intro_text": intro,
		"state":      updated,
	})
}

//
// --------------------------------------------------
// POST /orders/:id/prefill
// --------------------------------------------------
//

func (h *Handler) PrefillCompanyDetails(c *gin.Context) {
	st, ok := h.loadOrder(c)
	if !ok {
		return
	}

	if errs := order.ValidateIdentity(st.Identity); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	prefill, err := h.service.Prefill(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "prefill unavailable"})
		return
	}

	updated, err := h.orders.ApplyUpdateFn(c.Request.Context(), c.Param("id"), func(cur order.State) order.Patch {
		return prefillPatch(cur, prefill)
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prefill": prefill,
		"state":   updated,
	})
}

// prefillPatch fills only what the user has not typed yet; suggestions never
// overwrite manual input.
func prefillPatch(cur order.State, prefill *llm.CompanyPrefill) order.Patch {
	var patch order.Patch

	if cur.CompanyNames.FirstChoice == "" && len(prefill.SuggestedCompanyNames) > 0 {
		names := &order.CompanyNamesPatch{}
		names.FirstChoice = &prefill.SuggestedCompanyNames[0]
		if len(prefill.SuggestedCompanyNames) > 1 {
			names.SecondChoice = &prefill.SuggestedCompanyNames[1]
		}
		if len(prefill.SuggestedCompanyNames) > 2 {
			names.ThirdChoice = &prefill.SuggestedCompanyNames[2]
		}
		patch.CompanyNames = names
	}

	if len(cur.Directors) == 0 && prefill.SuggestedDirector.FullName != "" {
		directors := []order.Director{{
			FullName:    prefill.SuggestedDirector.FullName,
			Email:       prefill.SuggestedDirector.Email,
			Phone:       prefill.SuggestedDirector.Phone,
			Nationality: prefill.SuggestedDirector.Nationality,
		}}
		patch.Directors = &directors
	}

	if cur.PrimaryContact.FullName == "" && prefill.SuggestedPrimaryContact.FullName != "" {
		patch.PrimaryContact = &order.ContactPatch{
			FullName: &prefill.SuggestedPrimaryContact.FullName,
			Email:    &prefill.SuggestedPrimaryContact.Email,
			Phone:    &prefill.SuggestedPrimaryContact.Phone,
		}
	}

	return patch
}

func (h *Handler) loadOrder(c *gin.Context) (order.State, bool) {
	st, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return order.State{}, false
	}
	return st, true
}

func toRecommendation(rec llm.RecommendationPayload) order.Recommendation {
	return order.Recommendation{
		Jurisdiction:     rec.Jurisdiction,
		State:            rec.State,
		CompanyType:      rec.CompanyType,
		ShortDescription: rec.ShortDescription,
		Reasoning:        rec.Reasoning,
	}
}
