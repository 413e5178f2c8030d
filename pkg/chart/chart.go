// Package chart holds a validated four-pillar birth chart and builds its
// transit sequences.
//
// Charts are usually loaded from TOML:
//
//	name = "example"
//	gender = "male"
//	birth_year = 1984
//	dayun_start_year = 1985
//	pillars = ["甲子", "丁卯", "乙丑", "壬午"]
//
// YAML files with the same keys are read when the path ends in .yaml or
// .yml. The pillars are given in year, month, day, hour order. The Dayun start
// year is taken as given; deriving it from a birth date is out of scope.
package chart

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

// Gender selects the direction of the luck cycles together with the
// polarity of the year branch.
type Gender uint8

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return fmt.Sprintf("Gender(%d)", uint8(g))
}

// ParseGender accepts "male"/"m"/"男" and "female"/"f"/"女".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "男":
		return Male, nil
	case "female", "f", "女":
		return Female, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidChart, "unknown gender %q", s)
}

func (g Gender) MarshalText() ([]byte, error) {
	if g > Female {
		return nil, errors.New(errors.ErrCodeInvalidChart, "invalid gender %d", uint8(g))
	}
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	v, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Chart is an immutable birth chart. Use New or Decode to obtain one.
type Chart struct {
	Name           string
	Year           ganzhi.Pillar
	Month          ganzhi.Pillar
	Day            ganzhi.Pillar
	Hour           ganzhi.Pillar
	Gender         Gender
	BirthYear      int
	DayunStartYear int
}

// New validates and returns a chart. pillars are in year, month, day, hour
// order. The year pillar must be the pillar of birthYear and the first Dayun
// cannot start before birth.
func New(pillars [4]ganzhi.Pillar, gender Gender, birthYear, dayunStartYear int) (*Chart, error) {
	for i, p := range pillars {
		if !p.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidChart, "%s pillar %d/%d is not in the cycle",
				positions[i], uint8(p.Stem), uint8(p.Branch))
		}
	}
	if gender > Female {
		return nil, errors.New(errors.ErrCodeInvalidChart, "invalid gender %d", uint8(gender))
	}
	if err := errors.ValidateYear(birthYear); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "birth year")
	}
	if err := errors.ValidateYear(dayunStartYear); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "dayun start year")
	}
	if want := ganzhi.YearPillar(birthYear); pillars[0] != want {
		return nil, errors.New(errors.ErrCodeInvalidChart, "year pillar %s does not match birth year %d (%s)",
			pillars[0], birthYear, want)
	}
	if dayunStartYear < birthYear {
		return nil, errors.New(errors.ErrCodeInvalidChart, "dayun starts in %d, before birth in %d",
			dayunStartYear, birthYear)
	}
	return &Chart{
		Year:           pillars[0],
		Month:          pillars[1],
		Day:            pillars[2],
		Hour:           pillars[3],
		Gender:         gender,
		BirthYear:      birthYear,
		DayunStartYear: dayunStartYear,
	}, nil
}

var positions = [4]string{"year", "month", "day", "hour"}

// Positions names the pillars in chart order.
func Positions() []string { return positions[:] }

// Pillars returns the pillars in year, month, day, hour order.
func (c *Chart) Pillars() []ganzhi.Pillar {
	return []ganzhi.Pillar{c.Year, c.Month, c.Day, c.Hour}
}

// Stems returns the four stems in chart order.
func (c *Chart) Stems() []ganzhi.Stem {
	return []ganzhi.Stem{c.Year.Stem, c.Month.Stem, c.Day.Stem, c.Hour.Stem}
}

// Branches returns the four branches in chart order.
func (c *Chart) Branches() []ganzhi.Branch {
	return []ganzhi.Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch, c.Hour.Branch}
}

// DayMaster returns the day stem.
func (c *Chart) DayMaster() ganzhi.Stem { return c.Day.Stem }

// Forward reports whether the luck cycles run forward through the sexagenary
// cycle: for a man born in a yang year or a woman born in a yin year.
func (c *Chart) Forward() bool {
	return (c.Gender == Male) == (c.Year.Branch.Polarity() == ganzhi.Yang)
}

// XiaoyunCount is the number of Xiaoyun years before the first Dayun.
func (c *Chart) XiaoyunCount() int { return c.DayunStartYear - c.BirthYear }

// Dayun returns a fresh cursor over the decade cycles.
func (c *Chart) Dayun() *transit.Cursor {
	return transit.NewDayun(c.Month, c.Forward(), c.DayunStartYear, c.BirthYear)
}

// Liunian returns a fresh cursor over the yearly pillars from birth.
func (c *Chart) Liunian() *transit.Cursor { return transit.NewLiunian(c.BirthYear) }

// Xiaoyun returns a fresh cursor over the childhood years.
func (c *Chart) Xiaoyun() *transit.Cursor {
	return transit.NewXiaoyun(c.Hour, c.Forward(), c.BirthYear, c.XiaoyunCount())
}

// Transits builds a new transit table for the chart. Tables share nothing,
// so each consumer should own one.
func (c *Chart) Transits() *transit.Table {
	return transit.NewTable(c.Xiaoyun(), c.Dayun(), c.Liunian())
}

func (c *Chart) String() string {
	return fmt.Sprintf("%s %s %s %s (%s, %d)", c.Year, c.Month, c.Day, c.Hour, c.Gender, c.BirthYear)
}
