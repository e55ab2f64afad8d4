package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client はMongoDBへの接続を保持するクライアント。
// 接続の所有者はプロセスのエントリポイントであり、終了時にCloseを呼ぶこと。
type Client struct {
	// client はMongoDBドライバのクライアント。
	client *mongo.Client
}

// Connect はMongoDBに接続し、疎通確認を行ったクライアントを返す。
func Connect(ctx context.Context, uri string) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("MongoDBへの接続に失敗: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDBへの疎通確認に失敗: %w", err)
	}
	return &Client{client: client}, nil
}

// Close はMongoDBとの接続を切断する。
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("MongoDBとの切断に失敗: %w", err)
	}
	return nil
}

// Collection は指定されたデータベースのコレクションハンドルを返す。
func (c *Client) Collection(database, name string) Collection {
	return &mongoCollection{coll: c.client.Database(database).Collection(name)}
}

// mongoCollection はCollectionインターフェースのMongoDB実装。
type mongoCollection struct {
	coll *mongo.Collection
}

// Insert はドキュメントを挿入し、採番されたObjectIDを16進文字列で返す。
func (m *mongoCollection) Insert(ctx context.Context, doc Document) (string, error) {
	result, err := m.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("ドキュメントの挿入に失敗: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// FindByID はObjectIDの16進文字列でドキュメントを1件取得する。
func (m *mongoCollection) FindByID(ctx context.Context, id string) (Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("ドキュメントIDが不正: %w", err)
	}

	var raw bson.M
	if err := m.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ドキュメントの取得に失敗: %w", err)
	}
	return normalize(raw), nil
}

// List はフィルタに一致するドキュメントを挿入の新しい順で返す。
// $naturalの降順ソートにより物理的な挿入順の逆順を保証する。
func (m *mongoCollection) List(ctx context.Context, filter Document, limit int64) ([]Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "$natural", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("ドキュメントの検索に失敗: %w", err)
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("検索結果の読み取りに失敗: %w", err)
	}

	docs := make([]Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, normalize(raw))
	}
	return docs, nil
}

// SetFields は$setで指定フィールドを置き換える。該当IDが存在しない場合は
// upsertにより新規作成する。
func (m *mongoCollection) SetFields(ctx context.Context, id string, fields Document) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("ドキュメントIDが不正: %w", err)
	}

	result, err := m.coll.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M(fields)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("ドキュメントの更新に失敗: %w", err)
	}

	updateResult := UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
	if upserted, ok := result.UpsertedID.(primitive.ObjectID); ok {
		updateResult.UpsertedID = upserted.Hex()
	}
	return updateResult, nil
}

// DeleteByID はObjectIDの16進文字列でドキュメントを削除する。
func (m *mongoCollection) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("ドキュメントIDが不正: %w", err)
	}

	result, err := m.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("ドキュメントの削除に失敗: %w", err)
	}
	return result.DeletedCount, nil
}

// normalize はBSONドキュメントをDocumentに変換する。
// ObjectIDの_idはJSONで扱いやすい16進文字列に変換する。
func normalize(raw bson.M) Document {
	doc := Document(raw)
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}
