package catalog

// Word sets for the long-form alias substitution rules. These mirror the
// in-game naming scheme: tier adjectives map to T3-T8, enchant qualities to
// enchant levels 1-3 on resources. The sets are fixed at compile time and
// must not be mutated.
var longTierNames = map[string]bool{
	"Journeyman's":  true,
	"Adept's":       true,
	"Expert's":      true,
	"Master's":      true,
	"Grandmaster's": true,
	"Elder's":       true,
}

var longEnchantNames = map[string]bool{
	"Uncommon":    true,
	"Rare":        true,
	"Exceptional": true,
	"Cured":       true,
}

// resourceNames lists the material words that follow an enchant quality in
// resource display names ("Uncommon Birch Logs"). Players rarely type the
// material, so aliases with it dropped are generated as well.
var resourceNames = map[string]bool{
	// Woods
	"Birch": true, "Pine": true, "Cedar": true, "Bloodoak": true,
	"Ashenbark": true, "Whitewood": true,
	// Metals
	"Copper": true, "Tin": true, "Iron": true, "Titatnium": true,
	"Runite": true, "Meteorite": true, "Adamantium": true,
	// Hides and leathers
	"Rugged": true, "Thin": true, "Medium": true, "Heavy": true,
	"Robust": true, "Thick": true, "Resilient": true, "Bronze": true,
	"Stiff": true, "Worked": true, "Cured": true, "Hardened": true,
	"Reinforced": true, "Fortified": true,
	// Cloths
	"Simple": true, "Neat": true, "Fine": true, "Ornate": true,
	"Lavish": true, "Opulent": true, "Baroque": true,
}
