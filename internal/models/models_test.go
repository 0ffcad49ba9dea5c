package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONAndScan(t *testing.T) {
	d, err := ParseDate("2026-03-09")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-09"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-10"`), &back))
	assert.Equal(t, d.AddDays(1), back)

	var scanned Date
	require.NoError(t, scanned.Scan("2026-03-09T00:00:00Z"))
	assert.Equal(t, d, scanned)
	require.NoError(t, scanned.Scan(time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)))
	assert.Equal(t, d, scanned)
	assert.Error(t, scanned.Scan(42))

	assert.Error(t, json.Unmarshal([]byte(`"09/03/2026"`), &back))
}

func TestTaskCreate_Validate(t *testing.T) {
	due := NewDate(time.Now())
	in := TaskCreate{UserID: "u1", Title: "Weed", Category: "Maintenance", DueDate: due}
	require.NoError(t, in.Validate())
	assert.Equal(t, PriorityMedium, in.Priority)

	missing := []TaskCreate{
		{Title: "Weed", Category: "Maintenance", DueDate: due},
		{UserID: "u1", Category: "Maintenance", DueDate: due},
		{UserID: "u1", Title: "Weed", DueDate: due},
		{UserID: "u1", Title: "Weed", Category: "Maintenance"},
		{UserID: "u1", Title: "Weed", Category: "Maintenance", DueDate: due, Priority: "urgent"},
	}
	for _, c := range missing {
		assert.Error(t, c.Validate())
	}
}

func TestTaskUpdate_CompletionTimestamp(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := &Task{Title: "Irrigate"}
	done, undone := true, false

	require.NoError(t, TaskUpdate{Completed: &done}.Apply(task, now))
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
	assert.Equal(t, "Irrigate", task.Title)

	require.NoError(t, TaskUpdate{Completed: &undone}.Apply(task, now))
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)

	bad := Priority("urgent")
	assert.ErrorIs(t, TaskUpdate{Priority: &bad}.Apply(task, now), ErrInvalidPriority)
}

func TestUserUpdate_KeepsID(t *testing.T) {
	u := &User{ID: "u1", Name: "Old"}
	name := "  New  "
	crops := []string{"wheat"}
	UserUpdate{Name: &name, PrimaryCrops: &crops}.Apply(u, time.Now())

	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "New", u.Name)
	assert.Equal(t, CropList{"wheat"}, u.PrimaryCrops)

	crops[0] = "rice"
	assert.Equal(t, "wheat", u.PrimaryCrops[0])
}

func TestCropList_ValueScan(t *testing.T) {
	v, err := CropList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var c CropList
	require.NoError(t, c.Scan(`["rice","onion"]`))
	assert.Equal(t, CropList{"rice", "onion"}, c)
	require.NoError(t, c.Scan(nil))
	assert.Empty(t, c)
}

func TestSortTreatments_StableByPriority(t *testing.T) {
	ts := []Treatment{
		{Title: "a", Priority: PriorityLow},
		{Title: "b", Priority: PriorityHigh},
		{Title: "c", Priority: PriorityMedium},
		{Title: "d", Priority: PriorityHigh},
	}
	SortTreatments(ts)
	var titles []string
	for _, tr := range ts {
		titles = append(titles, tr.Title)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, titles)
}

func TestChatRequest_Validate(t *testing.T) {
	assert.NoError(t, ChatRequest{SessionID: "s", Message: "hi"}.Validate())
	assert.ErrorIs(t, ChatRequest{Message: "hi"}.Validate(), ErrEmptySessionID)
	assert.ErrorIs(t, ChatRequest{SessionID: "s", Message: "  "}.Validate(), ErrEmptyMessage)
}

func TestMarketPrice_Validate(t *testing.T) {
	assert.NoError(t, MarketPrice{MinPrice: 9, AvgPrice: 10, MaxPrice: 11}.Validate())
	assert.Error(t, MarketPrice{MinPrice: 12, AvgPrice: 10, MaxPrice: 11}.Validate())
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, ClampConfidence(-1))
	assert.Equal(t, 1.0, ClampConfidence(1.2))
	assert.Equal(t, 0.5, ClampConfidence(0.5))
}
