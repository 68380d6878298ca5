package clause

import "regexp"

// Clause type identifiers.  The string values double as the wire format, so
// they never change even if the Go names do.
const (
	TypeThirdPartySharing       = "THIRD_PARTY_SHARING"
	TypeDataSelling             = "DATA_SELLING"
	TypeTargetedAdvertising     = "TARGETED_ADVERTISING"
	TypeDataRetention           = "DATA_RETENTION"
	TypeInternationalTransfer   = "INTERNATIONAL_TRANSFER"
	TypeMandatoryArbitration    = "MANDATORY_ARBITRATION"
	TypeLiabilityLimitation     = "LIABILITY_LIMITATION"
	TypeSensitiveDataCollection = "SENSITIVE_DATA_COLLECTION"
	TypeGeolocation             = "GEOLOCATION"
	TypeUserRights              = "USER_RIGHTS"
)

// Definition describes one clause category: the terms and patterns that
// signal it and the weight it contributes to the risk balance.  A negative
// weight marks a clause that works in the reader's favor.
type Definition struct {
	Type     string
	Weight   int
	Keywords []string
	Patterns []*regexp.Regexp
}

// Catalog returns the built-in clause definitions in evaluation order.  The
// order is part of the contract: detection results and reports list clauses
// in this order.
func Catalog() []Definition {
	return catalog
}

// Lookup returns the definition for a clause type, or false if the type is
// unknown.
func Lookup(clauseType string) (Definition, bool) {
	for _, def := range catalog {
		if def.Type == clauseType {
			return def, true
		}
	}
	return Definition{}, false
}

var catalog = []Definition{
	{
		Type:   TypeThirdPartySharing,
		Weight: 8,
		Keywords: []string{
			"share with third parties", "third party partners", "affiliate",
			"partenaires tiers", "partage avec des tiers", "partenaires commerciaux",
			"may share your information", "disclosure to third parties",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)share.*(?:with|to).*third[\s-]?part`),
			regexp.MustCompile(`(?i)disclose.*(?:to|with).*(?:third[\s-]?party|partner|affiliate)`),
			regexp.MustCompile(`(?i)partag.*(?:avec|aux).*(?:tiers|partenaires)`),
		},
	},
	{
		Type:   TypeDataSelling,
		Weight: 10,
		Keywords: []string{
			"sell your data", "sell personal information", "monetize",
			"vendre vos données", "commercialiser", "monétiser",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)sell.*(?:your|personal).*(?:data|information)`),
			regexp.MustCompile(`(?i)vend.*(?:vos|les).*donn[ée]es`),
			regexp.MustCompile(`(?i)commercialis.*donn[ée]es`),
		},
	},
	{
		Type:   TypeTargetedAdvertising,
		Weight: 6,
		Keywords: []string{
			"targeted advertising", "personalized ads", "behavioral advertising",
			"publicité ciblée", "publicité personnalisée", "publicité comportementale",
			"ad targeting", "profiling",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:targeted|personalized|behavioral).*ad`),
			regexp.MustCompile(`(?i)ad.*(?:targeting|personalization)`),
			regexp.MustCompile(`(?i)publicit[ée].*(?:cibl[ée]e|personnalis[ée]e|comportementale)`),
			regexp.MustCompile(`(?i)profiling.*(?:for|to).*advertis`),
		},
	},
	{
		Type:   TypeDataRetention,
		Weight: 5,
		Keywords: []string{
			"retain", "retention period", "keep your data", "store for",
			"conservation", "durée de conservation", "conserver vos données",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:retain|keep|store).*(?:for|up to|until)`),
			regexp.MustCompile(`(?i)retention.*period`),
			regexp.MustCompile(`(?i)conserv.*(?:pendant|durant|pour|jusqu)`),
			regexp.MustCompile(`(?i)dur[ée]e.*conservation`),
		},
	},
	{
		Type:   TypeInternationalTransfer,
		Weight: 7,
		Keywords: []string{
			"international transfer", "outside the EU", "outside European Union",
			"third countries", "transfert international", "hors UE",
			"pays tiers", "États-Unis", "United States",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)transfer.*(?:outside|to).*(?:EU|European Union|EEA)`),
			regexp.MustCompile(`(?i)(?:international|cross-border).*transfer`),
			regexp.MustCompile(`(?i)transfert.*(?:hors|en dehors).*(?:UE|Union)`),
			regexp.MustCompile(`(?i)pays.*tiers`),
		},
	},
	{
		Type:   TypeMandatoryArbitration,
		Weight: 9,
		Keywords: []string{
			"mandatory arbitration", "binding arbitration", "arbitration clause",
			"arbitrage obligatoire", "clause d'arbitrage", "arbitrage contraignant",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:mandatory|binding).*arbitration`),
			regexp.MustCompile(`(?i)arbitration.*(?:clause|agreement)`),
			regexp.MustCompile(`(?i)arbitrage.*(?:obligatoire|contraignant)`),
			regexp.MustCompile(`(?i)clause.*arbitrage`),
		},
	},
	{
		Type:   TypeLiabilityLimitation,
		Weight: 6,
		Keywords: []string{
			"limitation of liability", "not liable", "no warranty",
			"limitation de responsabilité", "non responsable", "aucune garantie",
			"disclaimer",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)limitation.*(?:of|on).*liability`),
			regexp.MustCompile(`(?i)not.*liable.*for`),
			regexp.MustCompile(`(?i)no.*warranty`),
			regexp.MustCompile(`(?i)limitation.*responsabilit[ée]`),
			regexp.MustCompile(`(?i)non.*responsable`),
		},
	},
	{
		Type:   TypeSensitiveDataCollection,
		Weight: 9,
		Keywords: []string{
			"biometric", "health data", "medical", "genetic",
			"biométrique", "données de santé", "médical", "génétique",
			"racial", "religious", "political", "sexual orientation",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:biometric|health|medical|genetic).*(?:data|information)`),
			regexp.MustCompile(`(?i)donn[ée]es.*(?:biom[ée]triques?|sant[ée]|m[ée]dicales?|g[ée]n[ée]tiques?)`),
			regexp.MustCompile(`(?i)(?:racial|religious|political).*(?:data|beliefs)`),
		},
	},
	{
		Type:   TypeGeolocation,
		Weight: 7,
		Keywords: []string{
			"geolocation", "location data", "GPS", "precise location",
			"géolocalisation", "données de localisation", "position géographique",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:geo)?location.*(?:data|tracking|services)`),
			regexp.MustCompile(`(?i)GPS`),
			regexp.MustCompile(`(?i)(?:track|collect).*(?:your )?location`),
			regexp.MustCompile(`(?i)g[ée]olocalisation`),
			regexp.MustCompile(`(?i)donn[ée]es.*localisation`),
		},
	},
	{
		Type:   TypeUserRights,
		Weight: -5,
		Keywords: []string{
			"right to access", "right to deletion", "right to rectification",
			"droit d'accès", "droit à l'effacement", "droit de rectification",
			"data portability", "portabilité des données",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)right.*(?:access|deletion|erasure|rectification|portability)`),
			regexp.MustCompile(`(?i)droit.*(?:acc[èe]s|effacement|rectification|portabilit[ée])`),
			regexp.MustCompile(`(?i)you (?:can|may).*(?:delete|access|download).*data`),
		},
	},
}

// clauseSummaries maps each clause type to the reader-facing explanation
// shown in reports.  French copy with warning markers, kept verbatim across
// clients for consistency.
var clauseSummaries = map[string]string{
	TypeThirdPartySharing:       "Vos données peuvent être partagées avec des partenaires tiers.",
	TypeDataSelling:             "⚠️ Vos données personnelles peuvent être vendues.",
	TypeTargetedAdvertising:     "Vos données sont utilisées pour de la publicité ciblée.",
	TypeDataRetention:           "Vos données sont conservées pendant une durée spécifique.",
	TypeInternationalTransfer:   "⚠️ Vos données peuvent être transférées hors de l'UE.",
	TypeMandatoryArbitration:    "⚠️ Clause d'arbitrage obligatoire présente.",
	TypeLiabilityLimitation:     "Responsabilité limitée du fournisseur de service.",
	TypeSensitiveDataCollection: "⚠️ Collecte de données sensibles (santé, biométrie, etc.).",
	TypeGeolocation:             "Collecte de données de géolocalisation.",
	TypeUserRights:              "✓ Vos droits d'accès et de suppression sont mentionnés.",
}

// SummaryFor returns the canned summary for a clause type.
func SummaryFor(clauseType string) string {
	if s, ok := clauseSummaries[clauseType]; ok {
		return s
	}
	return "Clause détectée."
}

//Personal.AI order the ending
