package hierarchy

import "partner-commission-api/internal/dto"

// TerritoryFor 按层级范围挑选辖区名称：
// 大洲/大区取 region，国家取 country，州省取 region，本地取 city，个人取机构名
func TerritoryFor(level Level, req dto.CreatePartnerReq) string {
	switch level {
	case LevelContinental, LevelRegional:
		return req.Region
	case LevelNational:
		return req.Country
	case LevelState:
		return req.Region
	case LevelLocal:
		if req.City != "" {
			return req.City
		}
		return req.Country
	default:
		return req.OrgName
	}
}
