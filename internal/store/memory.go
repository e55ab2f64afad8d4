package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory はCollectionインターフェースのインメモリ実装。
// MongoDBを起動せずにハンドラのテストを行うために使用する。
// 挿入順をスライスで保持し、一覧取得はその逆順で返す。
type Memory struct {
	// mu はdocsへの並行アクセスを保護する。
	mu sync.Mutex
	// docs は挿入順のドキュメント列。各要素は"_id"フィールドを持つ。
	docs []Document
}

// NewMemory は空のインメモリコレクションを生成する。
func NewMemory() *Memory {
	return &Memory{}
}

// Insert はドキュメントを挿入し、UUIDで採番した識別子を返す。
func (m *Memory) Insert(_ context.Context, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	stored := cloneDocument(doc)
	stored["_id"] = id
	m.docs = append(m.docs, stored)
	return id, nil
}

// FindByID は識別子でドキュメントを1件取得する。
func (m *Memory) FindByID(_ context.Context, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs {
		if doc["_id"] == id {
			return cloneDocument(doc), nil
		}
	}
	return nil, ErrNotFound
}

// List はフィルタに一致するドキュメントを挿入の新しい順で返す。
func (m *Memory) List(_ context.Context, filter Document, limit int64) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := make([]Document, 0, len(m.docs))
	for i := len(m.docs) - 1; i >= 0; i-- {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if matches(m.docs[i], filter) {
			docs = append(docs, cloneDocument(m.docs[i]))
		}
	}
	return docs, nil
}

// SetFields は識別子で指定したドキュメントのフィールドを置き換える。
// 存在しない場合は指定された識別子で新規作成する（upsert）。
func (m *Memory) SetFields(_ context.Context, id string, fields Document) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs {
		if doc["_id"] != id {
			continue
		}
		modified := int64(0)
		for k, v := range fields {
			if k == "_id" {
				continue
			}
			if doc[k] != v {
				modified = 1
			}
			doc[k] = v
		}
		return UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}

	stored := cloneDocument(fields)
	stored["_id"] = id
	m.docs = append(m.docs, stored)
	return UpdateResult{UpsertedID: id}, nil
}

// DeleteByID は識別子でドキュメントを削除し、削除件数を返す。
func (m *Memory) DeleteByID(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs {
		if doc["_id"] == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// matches はドキュメントがフィルタの全フィールドと等価一致するかを判定する。
func matches(doc, filter Document) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}

// cloneDocument はドキュメントの浅いコピーを返す。
// 呼び出し元での変更が内部状態に波及しないようにする。
func cloneDocument(doc Document) Document {
	cloned := make(Document, len(doc))
	for k, v := range doc {
		cloned[k] = v
	}
	return cloned
}
