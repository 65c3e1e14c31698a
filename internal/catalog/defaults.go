package catalog

// Default returns the built-in catalog. A deployment can replace it with a
// YAML file via CATALOG_PATH; the shape is identical.
func Default() *Catalog {
	return &Catalog{
		Regions: []string{
			RegionUSAExclusive,
			"North America",
			"Europe",
			"Asia-Pacific",
			"Middle East",
			"Global / Not Sure",
		},
		Jurisdictions: []string{
			JurisdictionUSA,
			"United Kingdom",
			"Singapore",
			"Hong Kong",
			"United Arab Emirates",
			"Cayman Islands",
		},
		USStates: []string{
			"Delaware-DE",
			"Wyoming-WY",
			"Nevada-NV",
			"California-CA",
			"Texas-TX",
			"Florida-FL",
			"New York-NY",
		},
		USCompanyTypes: []string{
			"Limited Liability Company",
			"C Corporation",
			"S Corporation",
			"Nonprofit Corporation",
		},
		InternationalCompanyTypes: []string{
			"Private Limited Company",
			"Public Limited Company",
			"Limited Liability Partnership",
			"Free Zone Establishment",
			"Exempted Company",
		},
		USAPackages: []Package{
			{
				Name:  "Starter",
				Price: 199,
				Features: []string{
					"Articles of organization filing",
					"Name availability check",
					"Digital document delivery",
				},
			},
			{
				Name:  "Standard",
				Price: 450,
				Features: []string{
					"Everything in Starter",
					"EIN application support",
					"Operating agreement template",
					"Registered agent for 12 months",
				},
			},
			{
				Name:  "Premium",
				Price: 850,
				Features: []string{
					"Everything in Standard",
					"Expedited state filing",
					"Compliance alerts for 12 months",
					"Dedicated incorporation specialist",
				},
			},
		},
		InternationalPackages: []Package{
			{
				Name:  "Standard Processing",
				Price: 250,
				Features: []string{
					"Processing in 3-4 weeks",
					"Digital document delivery",
				},
			},
			{
				Name:  "Express Processing",
				Price: 550,
				Features: []string{
					"Processing in 1-2 weeks",
					"Digital document delivery",
					"Priority document review",
				},
			},
			{
				Name:  "Priority Processing",
				Price: 950,
				Features: []string{
					"Processing in 5-7 business days",
					"Courier document delivery",
					"Priority document review",
					"Dedicated case manager",
				},
			},
		},
		AddOns: []AddonDefinition{
			{
				ID:          "registered-agent",
				Name:        "Registered Agent Service",
				Description: "A registered agent address and mail forwarding for one year.",
				Price:       99,
			},
			{
				ID:          "ein-registration",
				Name:        "EIN Registration",
				Description: "Preparation and filing of the federal Employer Identification Number application.",
				Price:       119,
			},
			{
				ID:              "bank-account",
				Name:            "Business Bank Account Opening",
				Description:     "Introduction and document preparation for a business bank account with a partner bank.",
				Price:           250,
				RequiresDetails: true,
			},
			{
				ID:              "virtual-office",
				Name:            "Virtual Office Address",
				Description:     "A prestigious business address with mail scanning for one year.",
				Price:           350,
				RequiresDetails: true,
			},
			{
				ID:          "accounting",
				Name:        "Accounting & Bookkeeping",
				Description: "Monthly bookkeeping and annual financial statements for the first year.",
				Price:       450,
			},
			{
				ID:              "trademark",
				Name:            "Trademark Registration",
				Description:     "Trademark search and registration filing in the incorporation jurisdiction.",
				Price:           599,
				RequiresDetails: true,
			},
			{
				ID:          "compliance-calendar",
				Name:        "Compliance Calendar",
				Description: "Automated reminders for annual filings, renewals and tax deadlines.",
				Price:       149,
			},
			{
				ID:          "nominee-director",
				Name:        "Nominee Director Service",
				Description: "A professional nominee director for jurisdictions with local-director requirements.",
				Price:       899,
			},
		},
		FeaturedPrices: []FeaturedPrice{
			{Jurisdiction: JurisdictionUSA, State: "Delaware-DE", CompanyType: "Limited Liability Company", Price: 199},
			{Jurisdiction: JurisdictionUSA, State: "Wyoming-WY", CompanyType: "Limited Liability Company", Price: 179},
			{Jurisdiction: JurisdictionUSA, State: "Delaware-DE", CompanyType: "C Corporation", Price: 229},
			{Jurisdiction: "Singapore", CompanyType: "Private Limited Company", Price: 499},
			{Jurisdiction: "United Kingdom", CompanyType: "Private Limited Company", Price: 299},
			{Jurisdiction: "Hong Kong", CompanyType: "Private Limited Company", Price: 449},
			{Jurisdiction: "United Arab Emirates", CompanyType: "Free Zone Establishment", Price: 999},
			{Jurisdiction: "Cayman Islands", CompanyType: "Exempted Company", Price: 1499},
		},
		DefaultUSAPrice:           249,
		DefaultInternationalPrice: 399,
		Fees: Fees{
			USAState:                150,
			InternationalGovernment: 100,
		},
	}
}
