package shard

import (
	"testing"
	"time"
)

func TestCRC32ShardStrategy(t *testing.T) {
	strategy := NewCRC32Strategy(4)
	txID := uint64(123456789)
	shard := strategy.GetShard(txID)
	if shard < 0 || shard >= 4 {
		t.Errorf("Shard out of range: %d", shard)
	}
}

func TestShardEngine_GetTable(t *testing.T) {
	engine := NewShardEngine(CommissionBase, 4)
	txID := uint64(987654321)
	timestamp := time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local)
	table := engine.GetTable(txID, timestamp)

	expectedPrefix := "p_commission_202608_p"
	if len(table) < len(expectedPrefix) || table[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("Unexpected table name: %s", table)
	}
}

func TestTable_ConsistentWithEngine(t *testing.T) {
	ts := time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local)
	txID := uint64(555666777)

	got := Table(CommissionBase, ts, txID)
	want := engineFor(CommissionBase).GetTable(txID, ts)
	if got != want {
		t.Errorf("Table mismatch: %s vs %s", got, want)
	}

	tables := AllTables(CommissionBase, ts)
	if len(tables) != int(defaultShardCount) {
		t.Errorf("unexpected table count: %d", len(tables))
	}
	found := false
	for _, tb := range tables {
		if tb == got {
			found = true
		}
	}
	if !found {
		t.Errorf("%s not in AllTables %v", got, tables)
	}
}

func TestShardEngine_GetTable_BadTime(t *testing.T) {
	engine := NewShardEngine(DistributionBase, 4)
	table := engine.GetTable(42, time.Time{})
	if table == "" {
		t.Error("expected fallback to current time, got empty table name")
	}
}
