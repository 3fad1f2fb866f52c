package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mgnrega-dash/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	districtsCollection = "districts"
	metricsCollection   = "metrics"
	locksCollection     = "locks"

	seedLockID  = "seed"
	seedLockTTL = 10 * time.Minute
)

type districtDoc struct {
	ID          string    `bson:"id"`
	NameEN      string    `bson:"name_en"`
	NameKN      string    `bson:"name_kn"`
	Feature     string    `bson:"feature"`
	Coordinates []float64 `bson:"coordinates,omitempty"`
}

func (d districtDoc) toModel() models.District {
	out := models.District{
		ID:          d.ID,
		NameEN:      d.NameEN,
		NameKN:      d.NameKN,
		Feature:     d.Feature,
		Coordinates: models.DefaultCoordinates,
	}
	if len(d.Coordinates) == 2 {
		out.Coordinates = [2]float64{d.Coordinates[0], d.Coordinates[1]}
	}
	return out
}

// Document is the MongoDB adapter. It expects the canonical field names and relies on
// aggregation pipelines for the latest-per-district view.
type Document struct {
	client *mongo.Client
	db     *mongo.Database
	logr   *zap.Logger
}

var _ Store = (*Document)(nil)
var _ Seedable = (*Document)(nil)

func NewDocument(client *mongo.Client, database string, logr *zap.Logger) *Document {
	return &Document{client: client, db: client.Database(database), logr: logr}
}

func (s *Document) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup indexes and the TTL index that expires stale seed locks.
func (s *Document) EnsureIndexes(ctx context.Context) error {
	if _, err := s.db.Collection(districtsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("district_id_idx"),
	}); err != nil {
		return fmt.Errorf("create districts index: %w", err)
	}

	if _, err := s.db.Collection(metricsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "district_id", Value: 1}, {Key: "year", Value: -1}, {Key: "month", Value: -1}},
		Options: options.Index().SetName("metric_district_period_idx"),
	}); err != nil {
		return fmt.Errorf("create metrics index: %w", err)
	}

	if _, err := s.db.Collection(locksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "acquired_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(seedLockTTL.Seconds())).SetName("lock_ttl_idx"),
	}); err != nil {
		return fmt.Errorf("create locks index: %w", err)
	}

	return nil
}

func (s *Document) ListDistricts(ctx context.Context) ([]models.District, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetLimit(MaxRows)

	cursor, err := s.db.Collection(districtsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find districts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []districtDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode districts: %w", err)
	}

	out := make([]models.District, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *Document) GetDistrict(ctx context.Context, id string) (*models.District, error) {
	var doc districtDoc
	err := s.db.Collection(districtsCollection).
		FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(bson.M{"_id": 0})).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find district %q: %w", id, err)
	}

	d := doc.toModel()
	return &d, nil
}

func (s *Document) LatestMetric(ctx context.Context, districtID string) (*models.MonthlyMetric, error) {
	metrics, err := s.TrendMetrics(ctx, districtID, 1)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, ErrNotFound
	}
	return &metrics[0], nil
}

func (s *Document) TrendMetrics(ctx context.Context, districtID string, limit int) ([]models.MonthlyMetric, error) {
	if limit <= 0 {
		return []models.MonthlyMetric{}, nil
	}
	if limit > MaxRows {
		limit = MaxRows
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(metricSort()).
		SetLimit(int64(limit))

	cursor, err := s.db.Collection(metricsCollection).Find(ctx, bson.M{"district_id": districtID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find metrics %q: %w", districtID, err)
	}
	defer cursor.Close(ctx)

	metrics := []models.MonthlyMetric{}
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, fmt.Errorf("decode metrics %q: %w", districtID, err)
	}
	return normalizeTimestamps(metrics), nil
}

func (s *Document) LatestPerDistrict(ctx context.Context) ([]models.MonthlyMetric, error) {
	cursor, err := s.db.Collection(metricsCollection).Aggregate(ctx, latestPerDistrictPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate latest metrics: %w", err)
	}
	defer cursor.Close(ctx)

	metrics := []models.MonthlyMetric{}
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, fmt.Errorf("decode latest metrics: %w", err)
	}
	return normalizeTimestamps(metrics), nil
}

func metricSort() bson.D {
	return bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
		{Key: "timestamp", Value: -1},
		{Key: "id", Value: -1},
	}
}

// latestPerDistrictPipeline sorts newest first, keeps the first document of every
// district group and returns the groups ordered by district id.
func latestPerDistrictPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: metricSort()}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$district_id"},
			{Key: "latest", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$latest"}}}},
		{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}}}},
		{{Key: "$sort", Value: bson.D{{Key: "district_id", Value: 1}}}},
		{{Key: "$limit", Value: MaxRows}},
	}
}

func normalizeTimestamps(metrics []models.MonthlyMetric) []models.MonthlyMetric {
	for i := range metrics {
		metrics[i].Timestamp = metrics[i].Timestamp.UTC()
	}
	return metrics
}

// Seed takes the seed lock document, runs fn and releases the lock. A held lock
// yields ErrSeedLocked; locks left behind by crashed processes expire via the TTL index.
func (s *Document) Seed(ctx context.Context, fn func(ctx context.Context, tx SeedTx) error) error {
	if err := s.EnsureIndexes(ctx); err != nil {
		return err
	}

	locks := s.db.Collection(locksCollection)
	_, err := locks.InsertOne(ctx, bson.M{"_id": seedLockID, "acquired_at": time.Now().UTC()})
	if mongo.IsDuplicateKeyError(err) {
		return ErrSeedLocked
	}
	if err != nil {
		return fmt.Errorf("acquire seed lock: %w", err)
	}
	defer func() {
		if _, err := locks.DeleteOne(context.Background(), bson.M{"_id": seedLockID}); err != nil {
			s.logr.Warn("failed to release seed lock", zap.Error(err))
		}
	}()

	return fn(ctx, documentSeedTx{db: s.db})
}

type documentSeedTx struct {
	db *mongo.Database
}

func (t documentSeedTx) CountDistricts(ctx context.Context) (int, error) {
	n, err := t.db.Collection(districtsCollection).CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (t documentSeedTx) CountMetrics(ctx context.Context) (int, error) {
	n, err := t.db.Collection(metricsCollection).CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (t documentSeedTx) InsertDistricts(ctx context.Context, districts []models.District) error {
	if len(districts) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(districts))
	for _, d := range districts {
		docs = append(docs, districtDoc{
			ID:          d.ID,
			NameEN:      d.NameEN,
			NameKN:      d.NameKN,
			Feature:     d.Feature,
			Coordinates: []float64{d.Coordinates[0], d.Coordinates[1]},
		})
	}
	_, err := t.db.Collection(districtsCollection).InsertMany(ctx, docs)
	return err
}

func (t documentSeedTx) InsertMetrics(ctx context.Context, metrics []models.MonthlyMetric) error {
	if len(metrics) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(metrics))
	for _, m := range metrics {
		docs = append(docs, m)
	}
	_, err := t.db.Collection(metricsCollection).InsertMany(ctx, docs)
	return err
}
