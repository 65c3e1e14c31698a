package recommend

import (
	"fmt"
	"strings"

	"incorply/internal/catalog"
	"incorply/internal/llm"
	"incorply/internal/order"
)

// The input builders extract, per call, exactly the state subset whose
// fingerprint decides whether a cached output may be reused.

func IncorporationInputs(st order.State) llm.IncorporationRequest {
	na := st.NeedsAssessment
	return llm.IncorporationRequest{
		BusinessActivities:  na.BusinessActivities,
		StrategicObjectives: na.StrategicObjectives,
		Region:              na.Region,
		BusinessDescription: na.BusinessDescription,
	}
}

func AddonInputs(st order.State, cat *catalog.Catalog) llm.AddonRequest {
	available := make([]llm.AddonSummary, 0, len(cat.AddOns))
	for _, def := range cat.AddOns {
		available = append(available, llm.AddonSummary{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Price:       def.Price,
		})
	}

	needs := make([]string, 0, len(st.NeedsAssessment.BusinessActivities)+len(st.NeedsAssessment.StrategicObjectives))
	needs = append(needs, st.NeedsAssessment.BusinessActivities...)
	needs = append(needs, st.NeedsAssessment.StrategicObjectives...)

	return llm.AddonRequest{
		MainServiceDetails: mainServiceDetails(st),
		UserNeeds:          needs,
		AvailableAddons:    available,
	}
}

func IntroInputs(st order.State) llm.IntroRequest {
	na := st.NeedsAssessment
	return llm.IntroRequest{
		Region:              na.Region,
		BusinessActivities:  na.BusinessActivities,
		StrategicObjectives: na.StrategicObjectives,
	}
}

func PrefillInputs(st order.State) llm.PrefillRequest {
	return llm.PrefillRequest{
		UserEmail:            st.Identity.Email,
		UserPhone:            st.Identity.Phone,
		BusinessPurpose:      strings.Join(st.NeedsAssessment.BusinessActivities, ", "),
		BusinessDescription:  st.NeedsAssessment.BusinessDescription,
		SelectedJurisdiction: st.Incorporation.Jurisdiction,
		SelectedState:        st.Incorporation.State,
		SelectedCompanyType:  st.Incorporation.CompanyType,
	}
}

func mainServiceDetails(st order.State) string {
	inc := st.Incorporation
	if inc.Jurisdiction == "" {
		return "Company incorporation, jurisdiction not selected yet"
	}

	where := inc.Jurisdiction
	if label := catalog.StateLabel(inc.State); label != "" {
		where = fmt.Sprintf("%s (%s)", where, label)
	}
	if inc.CompanyType == "" {
		return "Company incorporation in " + where
	}
	return fmt.Sprintf("%s incorporation in %s", inc.CompanyType, where)
}
