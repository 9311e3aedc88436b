package hierarchy

import "fmt"

// Level 合作伙伴层级，数值越小层级越高
type Level int8

const (
	LevelContinental Level = iota + 1 // 大洲级
	LevelRegional                     // 大区级
	LevelNational                     // 国家级
	LevelState                        // 州/省级
	LevelLocal                        // 本地级
	LevelAffiliate                    // 个人推广级
)

var levelNames = map[Level]string{
	LevelContinental: "continental",
	LevelRegional:    "regional",
	LevelNational:    "national",
	LevelState:       "state",
	LevelLocal:       "local",
	LevelAffiliate:   "affiliate",
}

// territoryScopes 每个层级对应的辖区范围
var territoryScopes = map[Level]string{
	LevelContinental: "continent",
	LevelRegional:    "region",
	LevelNational:    "country",
	LevelState:       "state",
	LevelLocal:       "city",
	LevelAffiliate:   "individual",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", int8(l))
}

// TerritoryScope 返回该层级辖区的地域范围
func (l Level) TerritoryScope() string {
	return territoryScopes[l]
}

// Valid 是否为已定义的层级
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// Below 判断 l 是否严格低于 other（affiliate 低于 continental）
func (l Level) Below(other Level) bool {
	return l > other
}

// ParseLevel 从字符串解析层级，仅在存储/API 边界使用
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if name == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown partner level: %q", s)
}
