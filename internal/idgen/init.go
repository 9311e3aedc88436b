package idgen

import "log"

// Init 初始化默认节点（单实例部署传固定 nodeID，多实例用环境区分）
func Init(nodeID int64) {
	if nodeID < 0 || nodeID > 1023 {
		log.Fatalf("[IDGen] invalid nodeID: %d", nodeID)
	}
	if err := InitNode("default", nodeID); err != nil {
		log.Fatalf("[IDGen] InitNode failed: %v", err)
	}
	log.Printf("[IDGen] Snowflake node initialized: nodeID=%d", nodeID)
}
