package hierarchy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	mainmodel "partner-commission-api/internal/model/main"
)

// fakeStore 内存存储，注册表逻辑与数据库解耦
type fakeStore struct {
	partners map[uint64]*mainmodel.Partner
}

func newFakeStore() *fakeStore {
	return &fakeStore{partners: make(map[uint64]*mainmodel.Partner)}
}

func (s *fakeStore) Insert(p *mainmodel.Partner) error {
	cp := *p
	s.partners[p.PartnerID] = &cp
	return nil
}

func (s *fakeStore) Get(id uint64) (*mainmodel.Partner, error) {
	p, ok := s.partners[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) UpdateTeamMeta(partnerID uint64, teamCount, teamDepth int) error {
	if p, ok := s.partners[partnerID]; ok {
		p.TeamCount = teamCount
		p.TeamDepth = teamDepth
	}
	return nil
}

func testRegistry() (*Registry, *fakeStore) {
	store := newFakeStore()
	var nextID uint64 = 1000
	newID := func() uint64 {
		nextID++
		return nextID
	}
	rate := decimal.RequireFromString("0.06")
	return NewRegistry(store, func(Level) decimal.Decimal { return rate }, newID), store
}

func validReq(name string) dto.CreatePartnerReq {
	return dto.CreatePartnerReq{
		Name:        name,
		OrgName:     name + " Org",
		ContactName: "Alice",
		Email:       name + "@example.com",
		Phone:       "13800000000",
		Address:     "1 Main St",
		Country:     "US",
		Region:      "NA",
		City:        "NYC",
	}
}

func TestLevel_Below(t *testing.T) {
	assert.True(t, LevelAffiliate.Below(LevelContinental))
	assert.True(t, LevelLocal.Below(LevelState))
	assert.False(t, LevelContinental.Below(LevelAffiliate))
	assert.False(t, LevelState.Below(LevelState))
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("affiliate")
	require.NoError(t, err)
	assert.Equal(t, LevelAffiliate, l)

	_, err = ParseLevel("galaxy")
	assert.Error(t, err)
}

func TestCreateRoot(t *testing.T) {
	r, _ := testRegistry()

	p, err := r.CreateRoot(validReq("root"))
	require.NoError(t, err)
	assert.Equal(t, int8(LevelContinental), p.Level)
	assert.Nil(t, p.ParentID)
	assert.Equal(t, int8(mainmodel.PartnerActive), p.Status)
	assert.Equal(t, "continent", p.TerritoryScope)
}

func TestCreateRoot_MissingField(t *testing.T) {
	r, _ := testRegistry()

	req := validReq("root")
	req.Email = ""
	_, err := r.CreateRoot(req)
	require.Error(t, err)
	assert.Equal(t, constant.CodePartnerFieldMissing, constant.CodeFrom(err))
}

func TestAddPartner(t *testing.T) {
	r, store := testRegistry()

	root, err := r.CreateRoot(validReq("root"))
	require.NoError(t, err)

	child, err := r.AddPartner(validReq("child"), root.PartnerID, LevelRegional)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.PartnerID, *child.ParentID)

	// 挂接后上级团队元数据被刷新
	updated, _ := store.Get(root.PartnerID)
	assert.Equal(t, 1, updated.TeamCount)
	assert.Equal(t, 1, updated.TeamDepth)
}

func TestAddPartner_LevelNotBelowParent(t *testing.T) {
	r, _ := testRegistry()

	root, err := r.CreateRoot(validReq("root"))
	require.NoError(t, err)

	// 同级与更高级均被拒绝
	_, err = r.AddPartner(validReq("peer"), root.PartnerID, LevelContinental)
	require.Error(t, err)
	assert.Equal(t, constant.CodeLevelNotBelowParent, constant.CodeFrom(err))
}

func TestAddPartner_ParentNotFound(t *testing.T) {
	r, _ := testRegistry()

	_, err := r.AddPartner(validReq("orphan"), 999999, LevelAffiliate)
	require.Error(t, err)
	assert.Equal(t, constant.CodeParentNotFound, constant.CodeFrom(err))
}

func TestAddPartner_SkipLevels(t *testing.T) {
	r, _ := testRegistry()

	// 大洲级直接挂接个人级是允许的，只要求严格低于上级
	root, err := r.CreateRoot(validReq("root"))
	require.NoError(t, err)

	child, err := r.AddPartner(validReq("aff"), root.PartnerID, LevelAffiliate)
	require.NoError(t, err)
	assert.Equal(t, int8(LevelAffiliate), child.Level)
}

func TestGetAncestorChain(t *testing.T) {
	r, _ := testRegistry()

	root, _ := r.CreateRoot(validReq("root"))
	mid, err := r.AddPartner(validReq("mid"), root.PartnerID, LevelNational)
	require.NoError(t, err)
	leaf, err := r.AddPartner(validReq("leaf"), mid.PartnerID, LevelAffiliate)
	require.NoError(t, err)

	chain, err := r.GetAncestorChain(leaf.PartnerID)
	require.NoError(t, err)
	require.Len(t, chain, 2)

	// 最近的祖先在前
	assert.Equal(t, mid.PartnerID, chain[0].PartnerID)
	assert.Equal(t, root.PartnerID, chain[1].PartnerID)
	assert.Equal(t, LevelNational, chain[0].Level)
}

func TestGetAncestorChain_Root(t *testing.T) {
	r, _ := testRegistry()

	root, _ := r.CreateRoot(validReq("root"))
	chain, err := r.GetAncestorChain(root.PartnerID)
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestGetAncestorChain_NotFound(t *testing.T) {
	r, _ := testRegistry()

	_, err := r.GetAncestorChain(424242)
	require.Error(t, err)
	assert.Equal(t, constant.CodePartnerNotFound, constant.CodeFrom(err))
}

func TestTeamMeta_DeepChain(t *testing.T) {
	r, store := testRegistry()

	root, _ := r.CreateRoot(validReq("root"))
	mid, _ := r.AddPartner(validReq("mid"), root.PartnerID, LevelNational)
	_, err := r.AddPartner(validReq("leaf"), mid.PartnerID, LevelAffiliate)
	require.NoError(t, err)

	updatedRoot, _ := store.Get(root.PartnerID)
	assert.Equal(t, 2, updatedRoot.TeamCount)
	assert.Equal(t, 2, updatedRoot.TeamDepth)

	updatedMid, _ := store.Get(mid.PartnerID)
	assert.Equal(t, 1, updatedMid.TeamCount)
	assert.Equal(t, 1, updatedMid.TeamDepth)
}
