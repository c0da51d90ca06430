package entities

// PlayerClass is the character archetype picked on the class menu
type PlayerClass int

const (
	ClassNone PlayerClass = iota
	ClassWarrior
	ClassArcher
	ClassMage
)

// ClassInfo contains combat and display information for each class
type ClassInfo struct {
	NameKey        string // Translation key for the class name
	DescriptionKey string // Translation key for the menu blurb
	Icon           string
	MeleeDamage    int
	RangedDamage   int // 0 means no ranged attack
	RangedRange    int // Cells a projectile travels before fading
}

// ClassTypes maps classes to their information
var ClassTypes = map[PlayerClass]ClassInfo{
	ClassWarrior: {
		NameKey:        "CLASS_WARRIOR",
		DescriptionKey: "CLASS_WARRIOR_DESC",
		Icon:           "W",
		MeleeDamage:    5,
	},
	ClassArcher: {
		NameKey:        "CLASS_ARCHER",
		DescriptionKey: "CLASS_ARCHER_DESC",
		Icon:           "A",
		MeleeDamage:    2,
		RangedDamage:   3,
		RangedRange:    6,
	},
	ClassMage: {
		NameKey:        "CLASS_MAGE",
		DescriptionKey: "CLASS_MAGE_DESC",
		Icon:           "M",
		MeleeDamage:    1,
		RangedDamage:   5,
		RangedRange:    4,
	},
}

// Classes lists the selectable classes in menu order
var Classes = []PlayerClass{ClassWarrior, ClassArcher, ClassMage}

// Info returns the class information; ClassNone yields the zero value
func (c PlayerClass) Info() ClassInfo {
	return ClassTypes[c]
}

// IsValid reports whether c is a selectable class
func (c PlayerClass) IsValid() bool {
	_, ok := ClassTypes[c]
	return ok
}

// HasRanged reports whether the class can fire projectiles
func (c PlayerClass) HasRanged() bool {
	return c.Info().RangedDamage > 0
}

func (c PlayerClass) String() string {
	switch c {
	case ClassWarrior:
		return "warrior"
	case ClassArcher:
		return "archer"
	case ClassMage:
		return "mage"
	default:
		return "none"
	}
}
