package job

import (
	"Todak/internal/model"
	"Todak/internal/pkg/kafka"
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/testutil"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.ReminderEvent
	failOn uint64
}

func (f *fakePublisher) PublishReminder(_ context.Context, event kafka.ReminderEvent) error {
	if event.UserID == f.failOn {
		return errors.New("broker down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}

func TestReminderDispatch(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	store := repository.NewStore(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	carol := testutil.CreateUser(t, db, "carol")
	dave := testutil.CreateUser(t, db, "dave")

	require.NoError(t, store.Reminders().SetReminder(ctx, alice.ID, "21:30:00"))
	require.NoError(t, store.Reminders().SetReminder(ctx, bob.ID, "21:30:45"))
	require.NoError(t, store.Reminders().SetReminder(ctx, carol.ID, "21:30:00"))
	require.NoError(t, store.Reminders().SetReminder(ctx, dave.ID, "08:00:00"))

	// carol 今天已经写过
	_, err := store.Moods().UpsertMood(ctx, &model.MoodRecord{
		UserID: carol.ID, RecordDate: "2024-05-15", ExternalID: "x", Content: "done",
		Emotions: []model.MoodRecordEmotion{{EmotionID: "calm"}},
	})
	require.NoError(t, err)

	loc := util.LoadLocation("Asia/Seoul")
	clock := &util.FixedClock{At: time.Date(2024, 5, 15, 21, 30, 5, 0, loc)}
	pub := &fakePublisher{}
	job := NewReminderJob(store.Reminders(), store.Moods(), redis.NewCache(nil, 0), clock, pub)

	sent, err := job.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, pub.events, 2)
	assert.Equal(t, alice.ID, pub.events[0].UserID)
	assert.Equal(t, "alice", pub.events[0].Nickname)
	assert.Equal(t, "21:30", pub.events[1].ReminderTime)
	assert.Equal(t, "2024-05-15", pub.events[1].Date)
}

func TestReminderDispatchPublishFailure(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	store := repository.NewStore(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	require.NoError(t, store.Reminders().SetReminder(ctx, alice.ID, "07:00:00"))
	require.NoError(t, store.Reminders().SetReminder(ctx, bob.ID, "07:00:00"))

	clock := &util.FixedClock{At: time.Date(2024, 5, 15, 7, 0, 0, 0, time.UTC)}
	pub := &fakePublisher{failOn: alice.ID}
	job := NewReminderJob(store.Reminders(), store.Moods(), redis.NewCache(nil, 0), clock, pub)

	sent, err := job.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, pub.events, 1)
	assert.Equal(t, bob.ID, pub.events[0].UserID)
}

func TestReminderDispatchNobodyDue(t *testing.T) {
	db := testutil.DB(t)
	store := repository.NewStore(db)
	clock := &util.FixedClock{At: time.Date(2024, 5, 15, 3, 0, 0, 0, time.UTC)}
	pub := &fakePublisher{}

	sent, err := NewReminderJob(store.Reminders(), store.Moods(), redis.NewCache(nil, 0), clock, pub).Dispatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, pub.events)
}
