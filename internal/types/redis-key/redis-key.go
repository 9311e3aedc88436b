package rediskey

import "fmt"

// 分配结果缓存 redis key
func Distribution(txID uint64) string {
	return fmt.Sprintf("commission:distribution:%d", txID)
}

// 祖先链缓存 redis key
func AncestorChain(partnerID uint64) string {
	return fmt.Sprintf("commission:ancestors:%d", partnerID)
}
