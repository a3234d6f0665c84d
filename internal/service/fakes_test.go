package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/internal/blockchain/registry"
	"github.com/assetx/rwa-storage/internal/storage"
	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// fakeRegistry is an in-memory registry. Object names are derived from
// per-(type, slot) counters the way the storage contract derives them, with
// a version dot so the sanitizer is exercised.
type fakeRegistry struct {
	mu         sync.Mutex
	bucketName string
	tokenAdmin common.Address
	counters   map[string]uint64
	records    map[common.Hash]*registry.URIHashRecord
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		bucketName: "asset-3982.bucket",
		tokenAdmin: common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		counters:   make(map[string]uint64),
		records:    make(map[common.Hash]*registry.URIHashRecord),
	}
}

func counterKey(uriType rwa.URIType, slot uint64) string {
	return fmt.Sprintf("%v-%v", int(uriType), slot)
}

func (r *fakeRegistry) objectNameAt(uriType rwa.URIType, slot uint64, count uint64) string {
	return fmt.Sprintf("doc-%v-%v.%v", int(uriType), slot, count)
}

func (r *fakeRegistry) GetStorageContract(ctx context.Context, assetID *big.Int) (bool, common.Address, error) {
	return true, common.HexToAddress("0x00000000000000000000000000000000000000bb"), nil
}

func (r *fakeRegistry) GreenfieldBucket(ctx context.Context, assetID *big.Int) (string, error) {
	return r.bucketName, nil
}

func (r *fakeRegistry) GreenfieldObject(ctx context.Context, assetID *big.Int, uriType rwa.URIType, slot uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.objectNameAt(uriType, slot, r.counters[counterKey(uriType, slot)]), nil
}

func (r *fakeRegistry) GetURIHash(ctx context.Context, assetID *big.Int, hash common.Hash) (*registry.URIHashRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[hash]; ok {
		copied := *record
		return &copied, nil
	}
	return &registry.URIHashRecord{Slot: big.NewInt(0), TimeStamp: big.NewInt(0)}, nil
}

func (r *fakeRegistry) GetURIHashCount(ctx context.Context, assetID *big.Int, category rwa.URICategory, uriType rwa.URIType) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count uint64
	for _, record := range r.records {
		if record.Category == category && record.URIType == uriType {
			count++
		}
	}
	return count, nil
}

func (r *fakeRegistry) ExistURIHash(ctx context.Context, assetID *big.Int, hash common.Hash) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[hash]
	return ok, nil
}

func (r *fakeRegistry) AddURI(ctx context.Context, assetID *big.Int, category rwa.URICategory, uriType rwa.URIType,
	title string, slot uint64, hash common.Hash, toChainIDs []string, feeToken common.Address) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[hash]; ok {
		return "", errorcode.ErrorDuplicateHash
	}

	key := counterKey(uriType, slot)
	objectName := r.objectNameAt(uriType, slot, r.counters[key])
	r.counters[key]++

	r.records[hash] = &registry.URIHashRecord{
		Category:   category,
		URIType:    uriType,
		Title:      title,
		Slot:       new(big.Int).SetUint64(slot),
		ObjectName: objectName,
		Hash:       hash,
		TimeStamp:  big.NewInt(1_756_000_000),
	}

	return fmt.Sprintf("0xtx%v", len(r.records)), nil
}

func (r *fakeRegistry) TokenAdmin(ctx context.Context, assetID *big.Int) (common.Address, error) {
	return r.tokenAdmin, nil
}

type fakeObject struct {
	info    storage.ObjectInfo
	payload []byte
}

// fakeGateway is an in-memory storage network.
type fakeGateway struct {
	mu                sync.Mutex
	buckets           map[string]*storage.BucketInfo
	objects           map[string]map[string]*fakeObject
	createBucketCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		buckets: make(map[string]*storage.BucketInfo),
		objects: make(map[string]map[string]*fakeObject),
	}
}

func (g *fakeGateway) HeadBucket(ctx context.Context, bucketName string) (*storage.BucketInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if info, ok := g.buckets[bucketName]; ok {
		return info, nil
	}
	return nil, errorcode.ErrorBucketNotFound
}

func (g *fakeGateway) CreateBucket(ctx context.Context, bucketName string, creator string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createBucketCalls++
	g.buckets[bucketName] = &storage.BucketInfo{Name: bucketName, Owner: creator, CreationTime: 1}
	g.objects[bucketName] = make(map[string]*fakeObject)
	return "0xbuckettx", nil
}

func (g *fakeGateway) CreateObject(ctx context.Context, req *storage.CreateObjectRequest, payload []byte) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	bucket, ok := g.objects[req.BucketName]
	if !ok {
		return "", errorcode.ErrorBucketNotFound
	}
	if _, ok := bucket[req.ObjectName]; ok {
		return "", storage.ErrorObjectExists
	}
	bucket[req.ObjectName] = &fakeObject{
		info: storage.ObjectInfo{
			Name:         req.ObjectName,
			Owner:        req.Creator,
			Creator:      req.Creator,
			Size:         req.PayloadSize,
			Visibility:   "private",
			CreationTime: 2,
			Checksums:    req.ExpectChecksums,
		},
	}
	return "0xcreatetx", nil
}

func (g *fakeGateway) UploadObject(ctx context.Context, bucketName string, objectName string, payload []byte, createTxRef string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	bucket, ok := g.objects[bucketName]
	if !ok {
		return errorcode.ErrorBucketNotFound
	}
	object, ok := bucket[objectName]
	if !ok {
		return errorcode.ErrorObjectNotFound
	}
	object.payload = payload
	return nil
}

func (g *fakeGateway) GetObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	bucket, ok := g.objects[bucketName]
	if !ok {
		return nil, errorcode.ErrorBucketNotFound
	}
	object, ok := bucket[objectName]
	if !ok {
		return nil, errorcode.ErrorObjectNotFound
	}
	return object.payload, nil
}

func (g *fakeGateway) HeadObject(ctx context.Context, bucketName string, objectName string) (*storage.ObjectInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	bucket, ok := g.objects[bucketName]
	if !ok {
		return nil, errorcode.ErrorBucketNotFound
	}
	object, ok := bucket[objectName]
	if !ok {
		return nil, errorcode.ErrorObjectNotFound
	}
	copied := object.info
	return &copied, nil
}

func (g *fakeGateway) ListObjects(ctx context.Context, bucketName string) ([]storage.ObjectInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	bucket, ok := g.objects[bucketName]
	if !ok {
		return nil, errorcode.ErrorBucketNotFound
	}
	infos := make([]storage.ObjectInfo, 0, len(bucket))
	for _, object := range bucket {
		infos = append(infos, object.info)
	}
	return infos, nil
}

func (g *fakeGateway) DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	bucket, ok := g.objects[bucketName]
	if !ok {
		return "", errorcode.ErrorBucketNotFound
	}
	if _, ok := bucket[objectName]; !ok {
		return "", errorcode.ErrorObjectNotFound
	}
	delete(bucket, objectName)
	return "0xdeletetx", nil
}

func (g *fakeGateway) SelectProvider(ctx context.Context) (*storage.Provider, error) {
	return &storage.Provider{ID: 1, Endpoint: "https://sp.example.org"}, nil
}

func (g *fakeGateway) objectCount(bucketName string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.objects[bucketName])
}

// fakeQuoter quotes a fixed fee and records approvals.
type fakeQuoter struct {
	mu        sync.Mutex
	fee       *big.Int
	decimals  uint8
	approvals []approval
}

type approval struct {
	spender common.Address
	amount  *big.Int
}

func newFakeQuoter() *fakeQuoter {
	return &fakeQuoter{fee: big.NewInt(5), decimals: 18}
}

func (q *fakeQuoter) GetCrossChainFee(ctx context.Context, toChainIDs []string, includeLocal bool, feeType int, feeToken common.Address) (*big.Int, error) {
	return new(big.Int).Set(q.fee), nil
}

func (q *fakeQuoter) FeeTokenDecimals(ctx context.Context, feeToken common.Address) (uint8, error) {
	return q.decimals, nil
}

func (q *fakeQuoter) ApproveFee(ctx context.Context, feeToken common.Address, spender common.Address, amount *big.Int) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.approvals = append(q.approvals, approval{spender: spender, amount: new(big.Int).Set(amount)})
	return "0xapprovetx", nil
}

// testEnv bundles the services under test with their fakes.
type testEnv struct {
	registry  *fakeRegistry
	gateway   *fakeGateway
	quoter    *fakeQuoter
	resolver  *NameResolverService
	storage   *StorageService
	binder    *BinderService
	object    *ObjectService
	reconcile *ReconcileService
}

func newTestEnv() *testEnv {
	reg := newFakeRegistry()
	gw := newFakeGateway()
	quoter := newFakeQuoter()

	info := &Info{
		Registry:              reg,
		Gateway:               gw,
		Quoter:                quoter,
		LocalChainID:          "421614",
		FeeTokenAddress:       common.HexToAddress("0x00000000000000000000000000000000000000fe"),
		StorageManagerAddress: common.HexToAddress("0x00000000000000000000000000000000000000cd"),
		SignerAddress:         common.HexToAddress("0x00000000000000000000000000000000000000ef"),
	}

	resolver := &NameResolverService{ServiceInfo: info}
	storageSvc := &StorageService{ServiceInfo: info, NameResolver: resolver}
	binder := &BinderService{ServiceInfo: info}
	object := &ObjectService{ServiceInfo: info, NameResolver: resolver, Storage: storageSvc, Binder: binder}
	reconcile := &ReconcileService{ServiceInfo: info, NameResolver: resolver}

	return &testEnv{
		registry:  reg,
		gateway:   gw,
		quoter:    quoter,
		resolver:  resolver,
		storage:   storageSvc,
		binder:    binder,
		object:    object,
		reconcile: reconcile,
	}
}
