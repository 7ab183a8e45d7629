package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noteRecord struct {
	NoteID        uuid.UUID  `gorm:"column:note_id;type:uuid;primaryKey"`
	NoteTitle     string     `gorm:"column:note_title;not null"`
	NoteDate      *time.Time `gorm:"column:note_date"`
	NoteCreatedAt time.Time  `gorm:"column:note_created_at;not null"`
	NoteUpdatedAt time.Time  `gorm:"column:note_updated_at;not null"`
}

func (noteRecord) TableName() string { return "notes" }

func (*noteRecord) Schema() Schema {
	return Schema{
		Table:      "notes",
		IDCol:      "note_id",
		CreatedCol: "note_created_at",
		UpdatedCol: "note_updated_at",
		DateCols:   []string{"note_date"},
	}
}

func (m *noteRecord) PrimaryID() uuid.UUID { return m.NoteID }

func (m *noteRecord) EnsureID() {
	if m.NoteID == uuid.Nil {
		m.NoteID = uuid.New()
	}
}

func (m *noteRecord) Stamp(now time.Time) {
	m.NoteCreatedAt = now
	m.NoteUpdatedAt = now
}

func newNoteStore(t *testing.T) *Store[*noteRecord] {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&noteRecord{}))
	return NewStore[*noteRecord](db)
}

func TestCreateStampsCreatedEqualsUpdated(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	m := &noteRecord{NoteTitle: "first"}
	id, err := store.Create(ctx, m)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.NoteTitle)
	assert.Equal(t, got.NoteCreatedAt.Unix(), got.NoteUpdatedAt.Unix())
}

func TestUpdateTouchesOnlyGivenColumnsAndUpdatedAt(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	m := &noteRecord{NoteTitle: "before"}
	id, err := store.Create(ctx, m)
	require.NoError(t, err)
	created := m.NoteCreatedAt

	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, store.Update(ctx, id, map[string]any{"note_title": "after"}))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", got.NoteTitle)
	assert.Equal(t, created.Unix(), got.NoteCreatedAt.Unix())
	assert.Greater(t, got.NoteUpdatedAt.Unix(), got.NoteCreatedAt.Unix())
}

func TestUpdateCoercesDateStrings(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &noteRecord{NoteTitle: "dated"})
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, id, map[string]any{"note_date": "2024-03-15"}))
	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.NoteDate)
	assert.Equal(t, "2024-03-15", got.NoteDate.UTC().Format("2006-01-02"))

	// clearing the date writes NULL, not a zero time
	require.NoError(t, store.Update(ctx, id, map[string]any{"note_date": ""}))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.NoteDate)
}

func TestUpdateNeverWritesIDOrCreatedAt(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &noteRecord{NoteTitle: "pinned"})
	require.NoError(t, err)
	orig, err := store.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, id, map[string]any{
		"note_id":         uuid.New(),
		"note_created_at": time.Now().Add(48 * time.Hour),
		"note_title":      "still pinned",
	}))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.NoteID)
	assert.Equal(t, orig.NoteCreatedAt.Unix(), got.NoteCreatedAt.Unix())
	assert.Equal(t, "still pinned", got.NoteTitle)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	store := newNoteStore(t)
	err := store.Update(context.Background(), uuid.New(), map[string]any{"note_title": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &noteRecord{NoteTitle: "gone"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))
	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	for i, title := range []string{"oldest", "middle", "newest"} {
		m := &noteRecord{NoteTitle: title}
		m.EnsureID()
		m.NoteCreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		m.NoteUpdatedAt = m.NoteCreatedAt
		require.NoError(t, store.db.Create(m).Error)
	}

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].NoteTitle)
	assert.Equal(t, "oldest", items[2].NoteTitle)
}

func TestSubscribeDeliversImmediateSnapshotAndChanges(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, &noteRecord{NoteTitle: "seed"})
	require.NoError(t, err)

	var snaps []Snapshot[*noteRecord]
	unsub := store.Subscribe(ctx, func(s Snapshot[*noteRecord]) {
		snaps = append(snaps, s)
	})

	require.Len(t, snaps, 1, "current snapshot delivered on subscribe")
	require.NoError(t, snaps[0].Err)
	assert.Len(t, snaps[0].Items, 1)

	_, err = store.Create(ctx, &noteRecord{NoteTitle: "second"})
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Len(t, snaps[1].Items, 2)

	unsub()
	unsub() // second call is a no-op

	_, err = store.Create(ctx, &noteRecord{NoteTitle: "third"})
	require.NoError(t, err)
	assert.Len(t, snaps, 2, "no delivery after unsubscribe")
}
