package rules

import (
	"fmt"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// Shensha names a star looked up from the shensha tables.
type Shensha uint8

const (
	Taohua   Shensha = iota // 桃花
	Hongyan                 // 红艳
	Hongluan                // 红鸾
	Tianxi                  // 天喜
	Yima                    // 驿马
)

var shenshaNames = [...]struct{ glyph, name string }{
	{"桃花", "taohua"},
	{"红艳", "hongyan"},
	{"红鸾", "hongluan"},
	{"天喜", "tianxi"},
	{"驿马", "yima"},
}

// AllShensha lists the stars in display order.
func AllShensha() []Shensha {
	return []Shensha{Taohua, Hongyan, Hongluan, Tianxi, Yima}
}

func (s Shensha) String() string {
	if int(s) < len(shenshaNames) {
		return shenshaNames[s].glyph
	}
	return fmt.Sprintf("Shensha(%d)", uint8(s))
}

// Name returns the pinyin name of the star.
func (s Shensha) Name() string {
	if int(s) < len(shenshaNames) {
		return shenshaNames[s].name
	}
	return fmt.Sprintf("shensha(%d)", uint8(s))
}

// Taohua and Yima are keyed by the Sanhe frame of the reference branch.
// 申子辰 见酉/寅, 寅午戌 见卯/申, 巳酉丑 见午/亥, 亥卯未 见子/巳.
var (
	taohuaByPivot = map[ganzhi.Branch]ganzhi.Branch{
		ganzhi.ZhiZi:  ganzhi.ZhiYou,
		ganzhi.ZhiWu:  ganzhi.ZhiMao,
		ganzhi.ZhiYou: ganzhi.ZhiWu,
		ganzhi.ZhiMao: ganzhi.ZhiZi,
	}
	yimaByPivot = map[ganzhi.Branch]ganzhi.Branch{
		ganzhi.ZhiZi:  ganzhi.ZhiYin,
		ganzhi.ZhiWu:  ganzhi.ZhiShen,
		ganzhi.ZhiYou: ganzhi.ZhiHai,
		ganzhi.ZhiMao: ganzhi.ZhiSi,
	}

	hongyan = [ganzhi.NumStems]ganzhi.Branch{
		ganzhi.ZhiWu,   // 甲
		ganzhi.ZhiShen, // 乙
		ganzhi.ZhiYin,  // 丙
		ganzhi.ZhiWei,  // 丁
		ganzhi.ZhiChen, // 戊
		ganzhi.ZhiChen, // 己
		ganzhi.ZhiXu,   // 庚
		ganzhi.ZhiYou,  // 辛
		ganzhi.ZhiZi,   // 壬
		ganzhi.ZhiShen, // 癸
	}
)

// sanhePivot returns the cardinal branch of the Sanhe frame containing b.
func sanhePivot(b ganzhi.Branch) ganzhi.Branch {
	for _, p := range sanhePivots {
		if b == p || b == p.Add(4) || b == p.Add(-4) {
			return p
		}
	}
	panic(fmt.Sprintf("rules: invalid branch %d", uint8(b)))
}

// TaohuaOf returns the peach blossom branch of a year or day branch.
func TaohuaOf(ref ganzhi.Branch) ganzhi.Branch {
	return taohuaByPivot[sanhePivot(ref)]
}

// YimaOf returns the travelling horse branch of a year or day branch.
func YimaOf(ref ganzhi.Branch) ganzhi.Branch {
	return yimaByPivot[sanhePivot(ref)]
}

// HongluanOf returns the red phoenix branch of a year branch.
func HongluanOf(year ganzhi.Branch) ganzhi.Branch {
	return ganzhi.ZhiMao.Add(-year.Index())
}

// TianxiOf returns the heavenly joy branch of a year branch. It always sits
// opposite Hongluan.
func TianxiOf(year ganzhi.Branch) ganzhi.Branch {
	return HongluanOf(year).Opposite()
}

// HongyanOf returns the red allure branch of a day master.
func HongyanOf(dayMaster ganzhi.Stem) ganzhi.Branch {
	return hongyan[dayMaster.Index()]
}
