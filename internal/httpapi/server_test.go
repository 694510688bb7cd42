package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vladislav15-maker/FamilyCourse/internal/auth"
	"github.com/Vladislav15-maker/FamilyCourse/internal/catalog"
	"github.com/Vladislav15-maker/FamilyCourse/internal/llm"
	"github.com/Vladislav15-maker/FamilyCourse/internal/practice"
	"github.com/Vladislav15-maker/FamilyCourse/internal/progress"
	"github.com/Vladislav15-maker/FamilyCourse/internal/speech"
)

type memDocs struct {
	docs map[string]json.RawMessage
}

func newMemDocs() *memDocs {
	return &memDocs{docs: make(map[string]json.RawMessage)}
}

func (m *memDocs) Save(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.docs[key] = data
	return nil
}

func (m *memDocs) Load(_ context.Context, key string, v any) (bool, error) {
	raw, ok := m.docs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m *memDocs) Delete(_ context.Context, key string) error {
	delete(m.docs, key)
	return nil
}

func newTestHandler(t *testing.T, mock *llm.MockProvider) (http.Handler, *progress.Store) {
	h, prog, _ := newTestHandlerSpeaker(t, mock)
	return h, prog
}

func newTestHandlerSpeaker(t *testing.T, mock *llm.MockProvider) (http.Handler, *progress.Store, *speech.Recorder) {
	t.Helper()
	ctx := context.Background()
	cat := catalog.Default()
	prog := progress.NewStore(ctx, cat, newMemDocs())
	svc := practice.NewService(ctx, mock, prog, cat, newMemDocs(), practice.DefaultConfig())
	rec := &speech.Recorder{}
	srv := New(auth.DefaultRoster(), cat, prog, svc, rec)
	return srv.Handler(), prog, rec
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandler(t, llm.NewMockProvider())

	rec := do(t, h, http.MethodPost, "/api/login", map[string]string{
		"username": "Oksana", "password": "Oksana25",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	user := decode[map[string]any](t, rec)
	assert.Equal(t, "student-oksana", user["id"])
	assert.Equal(t, "student", user["role"])
	assert.NotContains(t, rec.Body.String(), "Oksana25", "password must not be echoed")

	rec = do(t, h, http.MethodPost, "/api/login", map[string]string{
		"username": "Oksana", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/login", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnitEndpoints(t *testing.T) {
	h, _ := newTestHandler(t, llm.NewMockProvider())

	rec := do(t, h, http.MethodGet, "/api/units", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	units := decode[[]catalog.Unit](t, rec)
	assert.Len(t, units, 10)

	rec = do(t, h, http.MethodGet, "/api/units/unit-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	unit := decode[catalog.Unit](t, rec)
	assert.Equal(t, "unit-1", unit.ID)
	assert.Len(t, unit.Rounds, 2)

	rec = do(t, h, http.MethodGet, "/api/units/unit-99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/units/unit-1/rounds/unit-1-round-1/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	words := decode[[]catalog.Word](t, rec)
	require.Len(t, words, 5)
	assert.Equal(t, "hi-0", words[0].ID)

	// Unknown round yields an empty list, not an error.
	rec = do(t, h, http.MethodGet, "/api/units/unit-1/rounds/nope/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]catalog.Word](t, rec))
}

func TestProgressEndpoints(t *testing.T) {
	h, _ := newTestHandler(t, llm.NewMockProvider())

	rec := do(t, h, http.MethodPost, "/api/progress", map[string]any{
		"studentId":      "student-oksana",
		"unitId":         "unit-1",
		"roundId":        "unit-1-round-1",
		"score":          80,
		"incorrectWords": []string{"hi-0"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	attempt := decode[progress.Attempt](t, rec)
	assert.NotEmpty(t, attempt.ID)
	assert.Equal(t, 80, attempt.Score)

	// Missing required fields.
	rec = do(t, h, http.MethodPost, "/api/progress", map[string]any{"studentId": "s"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/progress?student=student-oksana&unit=unit-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]progress.Attempt](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/api/progress?student=student-alex", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]progress.Attempt](t, rec), "no attempts yet")

	rec = do(t, h, http.MethodGet, "/api/progress", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoresEndpoint(t *testing.T) {
	h, prog := newTestHandler(t, llm.NewMockProvider())
	ctx := context.Background()

	prog.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 80, nil)
	prog.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-2", 50, nil)

	rec := do(t, h, http.MethodGet, "/api/scores?student=s&unit=unit-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Overall int `json:"overall"`
		Rounds  []struct {
			RoundID string `json:"roundId"`
			Highest int    `json:"highest"`
		} `json:"rounds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 65, resp.Overall)
	require.Len(t, resp.Rounds, 2)
	assert.Equal(t, 80, resp.Rounds[0].Highest)
	assert.Equal(t, 50, resp.Rounds[1].Highest)

	rec = do(t, h, http.MethodGet, "/api/scores?student=s&unit=unit-99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/scores?student=s", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGradeEndpoints(t *testing.T) {
	h, _ := newTestHandler(t, llm.NewMockProvider())

	put := func(grade int) *httptest.ResponseRecorder {
		return do(t, h, http.MethodPut, "/api/grades", map[string]any{
			"studentId": "student-oksana",
			"unitId":    "unit-1",
			"grade":     grade,
			"gradedBy":  "teacher-vlad",
		})
	}

	require.Equal(t, http.StatusOK, put(3).Code)
	require.Equal(t, http.StatusOK, put(5).Code)
	assert.Equal(t, http.StatusBadRequest, put(1).Code)
	assert.Equal(t, http.StatusBadRequest, put(6).Code)

	rec := do(t, h, http.MethodGet, "/api/grades?student=student-oksana&unit=unit-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	g := decode[progress.Grade](t, rec)
	assert.Equal(t, 5, g.Grade, "regrade replaces the prior record")

	rec = do(t, h, http.MethodGet, "/api/grades?student=student-oksana", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]progress.Grade](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/api/grades?student=student-oksana&unit=unit-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPracticeTestEndpoints(t *testing.T) {
	content := `{"testQuestions": [{"word": "hi", "translation": "привет", "options": ["привет", "пока", "да", "нет"]}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	h, prog := newTestHandler(t, mock)

	// Nothing generated yet.
	rec := do(t, h, http.MethodGet, "/api/practice-test?student=student-oksana&unit=unit-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Weak words derived from recorded mistakes when the request omits them.
	prog.RecordAttempt(context.Background(), "student-oksana", "unit-1", "unit-1-round-1", 60, []string{"hi-0"})

	rec = do(t, h, http.MethodPost, "/api/practice-test", map[string]any{
		"studentId": "student-oksana",
		"unitId":    "unit-1",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	test := decode[practice.Test](t, rec)
	require.Len(t, test.Questions, 1)
	assert.Equal(t, "hi", test.Questions[0].Word)
	require.Equal(t, 1, mock.CallCount())
	assert.True(t, strings.Contains(mock.Calls[0].Messages[0].Content, "hi"))

	rec = do(t, h, http.MethodGet, "/api/practice-test?student=student-oksana&unit=unit-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		State string         `json:"state"`
		Test  *practice.Test `json:"test"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ready", got.State)
	require.NotNil(t, got.Test)
	assert.Len(t, got.Test.Questions, 1)
}

func TestPracticeTestErrors(t *testing.T) {
	mock := llm.NewMockProvider()
	h, prog := newTestHandler(t, mock)
	ctx := context.Background()

	// No mistakes recorded, no explicit weak words.
	rec := do(t, h, http.MethodPost, "/api/practice-test", map[string]any{
		"studentId": "student-alex",
		"unitId":    "unit-1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, mock.CallCount())

	// Malformed unit id.
	rec = do(t, h, http.MethodPost, "/api/practice-test", map[string]any{
		"studentId": "student-alex",
		"unitId":    "unit-abc",
		"weakWords": []string{"hi"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, mock.CallCount())

	// Provider failure maps to 502 and stores nothing.
	prog.RecordAttempt(ctx, "student-alex", "unit-1", "unit-1-round-1", 40, []string{"hi-0"})
	rec = do(t, h, http.MethodPost, "/api/practice-test", map[string]any{
		"studentId": "student-alex",
		"unitId":    "unit-1",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/practice-test?student=student-alex&unit=unit-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSpeakEndpoint(t *testing.T) {
	h, _, speaker := newTestHandlerSpeaker(t, llm.NewMockProvider())

	rec := do(t, h, http.MethodPost, "/api/speak", map[string]string{
		"unitId": "unit-1",
		"wordId": "hi-0",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, speaker.Current)
	assert.Equal(t, "hi", speaker.Current.Text)
	assert.Equal(t, "en-US", speaker.Current.Lang, "language defaults to English")

	rec = do(t, h, http.MethodPost, "/api/speak", map[string]string{
		"unitId": "unit-1",
		"wordId": "hello-1",
		"lang":   "en-GB",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "en-GB", speaker.Current.Lang)
	assert.Len(t, speaker.All, 2)

	rec = do(t, h, http.MethodPost, "/api/speak", map[string]string{
		"unitId": "unit-1",
		"wordId": "no-such-word",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/speak", map[string]string{"unitId": "unit-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
