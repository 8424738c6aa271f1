package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheets struct {
	rows       [][]interface{}
	getErr     error
	clearErr   error
	updateErr  error
	cleared    []string
	written    [][][]interface{}
	writeRange string
}

func (f *fakeSheets) GetValues(_ context.Context, _, _ string) ([][]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.rows, nil
}

func (f *fakeSheets) UpdateValues(_ context.Context, _, writeRange string, values [][]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.writeRange = writeRange
	f.written = append(f.written, values)
	return nil
}

func (f *fakeSheets) ClearValues(_ context.Context, _, clearRange string) error {
	f.cleared = append(f.cleared, clearRange)
	return f.clearErr
}

func (f *fakeSheets) ServiceAccountEmail() string { return "svc@example.iam.gserviceaccount.com" }

func headerRow() []interface{} {
	return []interface{}{"id", "title", "description", "imageUrl", "link", "startDate", "endDate"}
}

func TestGetAll_KeepsOnlyRowsWithIDAndTitle(t *testing.T) {
	fake := &fakeSheets{rows: [][]interface{}{
		headerRow(),
		{"e1", "Fernisering", "", "", "", "2025-09-01", "2025-09-14"},
		{"", "Uden id", "", "", "", "2025-09-01", "2025-09-14"},
		{"e3", "", "", "", "", "2025-09-01", "2025-09-14"},
		{"e4", "Julemarked", "", "", "", "2025-12-01", "2025-12-20"},
	}}
	repo := NewRepository(fake, "sheet-b")

	events, errMsg := repo.GetAll(context.Background())

	assert.Empty(t, errMsg)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "e4", events[1].ID)
}

func TestGetAll_MissingTabIsAnEmptyCalendar(t *testing.T) {
	fake := &fakeSheets{getErr: errors.New(`googleapi: Error 400: Unable to parse range: CalendarEvents`)}
	repo := NewRepository(fake, "sheet-b")

	events, errMsg := repo.GetAll(context.Background())

	assert.Empty(t, errMsg)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestGetAll_OtherReadErrorsSurface(t *testing.T) {
	fake := &fakeSheets{getErr: errors.New("permission denied")}
	repo := NewRepository(fake, "sheet-b")

	events, errMsg := repo.GetAll(context.Background())

	assert.Empty(t, events)
	assert.Contains(t, errMsg, "CalendarEvents")
	assert.Contains(t, errMsg, "svc@example.iam.gserviceaccount.com")
}

func TestGetAll_NilAPIDisablesTheFeature(t *testing.T) {
	repo := NewRepository(nil, "sheet-b")

	events, errMsg := repo.GetAll(context.Background())

	assert.Empty(t, events)
	assert.NotEmpty(t, errMsg)
}

func TestReplaceAll_WritesHeaderPlusRows(t *testing.T) {
	fake := &fakeSheets{}
	repo := NewRepository(fake, "sheet-b")

	err := repo.ReplaceAll(context.Background(), []Event{
		{ID: "e1", Title: "Fernisering", StartDate: "2025-09-01", EndDate: "2025-09-14"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CalendarEvents"}, fake.cleared)
	require.Len(t, fake.written, 1)
	assert.Equal(t, "CalendarEvents!A1", fake.writeRange)

	values := fake.written[0]
	require.Len(t, values, 2)
	assert.Equal(t, "id", values[0][0])
	assert.Equal(t, "e1", values[1][0])
	assert.Equal(t, "Fernisering", values[1][1])
}

func TestReplaceAll_MissingTabClearFailureFallsThroughToWrite(t *testing.T) {
	fake := &fakeSheets{clearErr: errors.New(`googleapi: Error 400: Unable to parse range: CalendarEvents`)}
	repo := NewRepository(fake, "sheet-b")

	err := repo.ReplaceAll(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, fake.written, 1)
	// Only the header row when there are no events.
	assert.Len(t, fake.written[0], 1)
}

func TestReplaceAll_OtherClearErrorAborts(t *testing.T) {
	fake := &fakeSheets{clearErr: errors.New("quota exceeded")}
	repo := NewRepository(fake, "sheet-b")

	err := repo.ReplaceAll(context.Background(), nil)

	require.Error(t, err)
	assert.Empty(t, fake.written)
}

func TestReplaceAll_NilAPI(t *testing.T) {
	repo := NewRepository(nil, "sheet-b")
	assert.Error(t, repo.ReplaceAll(context.Background(), nil))
}
