package domain

// StatName identifies a single gladiator stat.
type StatName string

const (
	StatSTR    StatName = "STR"
	StatAGI    StatName = "AGI"
	StatEND    StatName = "END"
	StatTalent StatName = "Talent"
)

// TrainableStats lists the stats that training can improve, in roll order.
var TrainableStats = []StatName{StatSTR, StatAGI, StatEND}

// StatBlock is a gladiator stat line. All values are non-negative.
type StatBlock struct {
	STR    int `json:"STR"`
	AGI    int `json:"AGI"`
	END    int `json:"END"`
	Talent int `json:"Talent"`
}

// Add returns the element-wise sum of two stat blocks.
func (s StatBlock) Add(other StatBlock) StatBlock {
	return StatBlock{
		STR:    s.STR + other.STR,
		AGI:    s.AGI + other.AGI,
		END:    s.END + other.END,
		Talent: s.Talent + other.Talent,
	}
}

// Rating derives the combat rating scalar from a stat block.
func (s StatBlock) Rating() float64 {
	return 1.2*float64(s.STR) + 1.1*float64(s.AGI) + 1.3*float64(s.END) + 2*float64(s.Talent)
}

// Price derives the recruitment price from a stat block.
func (s StatBlock) Price() int {
	return 10 + 3*(s.STR+s.AGI+s.END) + 6*s.Talent
}
