package service

import (
	"bytes"
	"context"
	"lingua_placement/internal/model"
	"lingua_placement/internal/repository"
	"lingua_placement/internal/util"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	instructorID = 9
	otherID      = 10
)

var mp3Header = []byte("ID3\x03\x00\x00\x00\x00\x00\x21 audio frames")

// audioFile builds a real multipart file header the way gin hands it over.
func audioFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("audio", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["audio"][0]
}

func newBank(t *testing.T) (*QuestionBankService, *memQuestionStore, *memStorage) {
	t.Helper()
	store := newMemQuestionStore()
	storage := newMemStorage()
	langs := memLanguages{
		1: assignedLanguage(1, instructorID),
		2: assignedLanguage(2, otherID),
	}
	return NewQuestionBankService(store, langs, storage), store, storage
}

func vocabReq() TestQuestionReq {
	return TestQuestionReq{
		LanguageID:    1,
		Category:      "vocabulary",
		Difficulty:    1,
		QuestionText:  "What does 'chien' mean?",
		OptionA:       "cat",
		OptionB:       "dog",
		OptionC:       "bread",
		OptionD:       "water",
		CorrectOption: "b",
	}
}

func listeningReq() TestQuestionReq {
	req := vocabReq()
	req.Category = "listening"
	req.QuestionText = "What did you hear?"
	return req
}

func TestQuestionBankService_CreateMultipleChoice(t *testing.T) {
	svc, store, _ := newBank(t)

	req := vocabReq()
	req.Passage = "ignored"
	req.CorrectText = "ignored"
	d, err := svc.Create(context.Background(), instructorID, req, nil)
	require.NoError(t, err)

	row := store.rows[d.ID]
	assert.Equal(t, uint(instructorID), row.InstructorID)
	assert.Equal(t, model.CategoryVocabulary, row.Category)
	require.NotNil(t, row.CorrectOption)
	assert.Equal(t, "b", *row.CorrectOption)
	assert.Nil(t, row.Passage)
	assert.Nil(t, row.CorrectText)
	assert.Nil(t, row.AudioPath)
	assert.Nil(t, d.AudioURL)

	q, err := row.ToQuestion()
	require.NoError(t, err)
	assert.IsType(t, model.VocabularyBody{}, q.Body)
}

func TestQuestionBankService_CreateWriting(t *testing.T) {
	svc, store, _ := newBank(t)

	req := TestQuestionReq{
		LanguageID:   1,
		Category:     "writing",
		Difficulty:   3,
		QuestionText: "Translate 'hello world'",
		OptionA:      "left over",
		CorrectText:  "  Bonjour le monde ",
	}
	d, err := svc.Create(context.Background(), instructorID, req, nil)
	require.NoError(t, err)

	row := store.rows[d.ID]
	require.NotNil(t, row.CorrectText)
	assert.Equal(t, "Bonjour le monde", *row.CorrectText)
	assert.Nil(t, row.OptionA)
	assert.Nil(t, row.CorrectOption)
}

func TestQuestionBankService_CreateRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TestQuestionReq)
	}{
		{"unknown category", func(r *TestQuestionReq) { r.Category = "speaking" }},
		{"difficulty out of range", func(r *TestQuestionReq) { r.Difficulty = 4 }},
		{"missing question text", func(r *TestQuestionReq) { r.QuestionText = "" }},
		{"missing option", func(r *TestQuestionReq) { r.OptionC = "" }},
		{"missing correct option", func(r *TestQuestionReq) { r.CorrectOption = "" }},
		{"uppercase correct option", func(r *TestQuestionReq) { r.CorrectOption = "B" }},
		{"reading without passage", func(r *TestQuestionReq) { r.Category = "reading" }},
		{"writing without correct text", func(r *TestQuestionReq) { r.Category = "writing" }},
		{"option too long", func(r *TestQuestionReq) { r.OptionA = strings.Repeat("a", 501) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newBank(t)
			req := vocabReq()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), instructorID, req, nil)
			assert.ErrorIs(t, err, util.ErrInvalidQuestionInput)
			assert.Empty(t, store.rows)
		})
	}
}

func TestQuestionBankService_CreateRequiresAssignedLanguage(t *testing.T) {
	svc, _, _ := newBank(t)

	req := vocabReq()
	req.LanguageID = 2
	_, err := svc.Create(context.Background(), instructorID, req, nil)
	assert.ErrorIs(t, err, util.ErrLanguageNotAssigned)

	req.LanguageID = 3
	_, err = svc.Create(context.Background(), instructorID, req, nil)
	assert.ErrorIs(t, err, util.ErrLanguageNotFound)
}

func TestQuestionBankService_CreateListening(t *testing.T) {
	svc, store, storage := newBank(t)

	_, err := svc.Create(context.Background(), instructorID, listeningReq(), nil)
	assert.ErrorIs(t, err, util.ErrAudioRequired)

	d, err := svc.Create(context.Background(), instructorID, listeningReq(), audioFile(t, "Clip.MP3", mp3Header))
	require.NoError(t, err)

	row := store.rows[d.ID]
	require.NotNil(t, row.AudioPath)
	key := *row.AudioPath
	assert.True(t, strings.HasPrefix(key, util.AudioDir+"/"))
	assert.True(t, strings.HasSuffix(key, ".mp3"))
	assert.Equal(t, mp3Header, storage.objects[key])
	require.NotNil(t, d.AudioURL)
	assert.Equal(t, "/uploads/"+key, *d.AudioURL)
}

func TestQuestionBankService_CreateRejectsBadAudio(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content []byte
	}{
		{"extension", "clip.exe", mp3Header},
		{"content", "clip.mp3", []byte("<html><body>not audio</body></html>")},
		{"size", "clip.wav", append(append([]byte{}, mp3Header...), make([]byte, util.MaxAudioSizeBytes)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, storage := newBank(t)

			_, err := svc.Create(context.Background(), instructorID, listeningReq(), audioFile(t, tt.file, tt.content))
			assert.ErrorIs(t, err, util.ErrInvalidAudio)
			assert.Empty(t, store.rows)
			assert.Empty(t, storage.objects)
		})
	}
}

func TestQuestionBankService_ReplaceOwnerOnly(t *testing.T) {
	svc, store, _ := newBank(t)
	d, err := svc.Create(context.Background(), instructorID, vocabReq(), nil)
	require.NoError(t, err)

	req := vocabReq()
	req.QuestionText = "changed"
	_, err = svc.Replace(context.Background(), otherID, d.ID, req, nil)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	assert.Equal(t, "What does 'chien' mean?", store.rows[d.ID].QuestionText)

	_, err = svc.Replace(context.Background(), instructorID, 404, req, nil)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestQuestionBankService_ReplaceListeningKeepsAudio(t *testing.T) {
	svc, store, storage := newBank(t)
	d, err := svc.Create(context.Background(), instructorID, listeningReq(), audioFile(t, "clip.mp3", mp3Header))
	require.NoError(t, err)
	key := *store.rows[d.ID].AudioPath

	req := listeningReq()
	req.CorrectOption = "d"
	updated, err := svc.Replace(context.Background(), instructorID, d.ID, req, nil)
	require.NoError(t, err)

	row := store.rows[d.ID]
	assert.Equal(t, key, *row.AudioPath)
	assert.Equal(t, "d", *row.CorrectOption)
	assert.Contains(t, storage.objects, key)
	assert.Equal(t, "/uploads/"+key, *updated.AudioURL)
}

func TestQuestionBankService_ReplaceListeningSwapsAudio(t *testing.T) {
	svc, store, storage := newBank(t)
	d, err := svc.Create(context.Background(), instructorID, listeningReq(), audioFile(t, "old.mp3", mp3Header))
	require.NoError(t, err)
	oldKey := *store.rows[d.ID].AudioPath

	_, err = svc.Replace(context.Background(), instructorID, d.ID, listeningReq(), audioFile(t, "new.ogg", []byte("OggS\x00\x02 vorbis")))
	require.NoError(t, err)

	newKey := *store.rows[d.ID].AudioPath
	assert.NotEqual(t, oldKey, newKey)
	assert.True(t, strings.HasSuffix(newKey, ".ogg"))
	assert.NotContains(t, storage.objects, oldKey)
	assert.Contains(t, storage.objects, newKey)
}

func TestQuestionBankService_ReplaceChangesCategory(t *testing.T) {
	svc, store, storage := newBank(t)
	d, err := svc.Create(context.Background(), instructorID, listeningReq(), audioFile(t, "clip.mp3", mp3Header))
	require.NoError(t, err)

	req := TestQuestionReq{
		LanguageID:   1,
		Category:     "writing",
		Difficulty:   2,
		QuestionText: "Write 'thank you'",
		CorrectText:  "merci",
	}
	_, err = svc.Replace(context.Background(), instructorID, d.ID, req, nil)
	require.NoError(t, err)

	row := store.rows[d.ID]
	assert.Equal(t, model.CategoryWriting, row.Category)
	assert.Nil(t, row.AudioPath)
	assert.Nil(t, row.OptionA)
	assert.Nil(t, row.CorrectOption)
	assert.Equal(t, "merci", *row.CorrectText)
	assert.Empty(t, storage.objects)

	_, err = row.ToQuestion()
	assert.NoError(t, err)
}

func TestQuestionBankService_ReplaceToListeningNeedsAudio(t *testing.T) {
	svc, _, _ := newBank(t)
	d, err := svc.Create(context.Background(), instructorID, vocabReq(), nil)
	require.NoError(t, err)

	_, err = svc.Replace(context.Background(), instructorID, d.ID, listeningReq(), nil)
	assert.ErrorIs(t, err, util.ErrAudioRequired)
}

func TestQuestionBankService_Delete(t *testing.T) {
	svc, store, storage := newBank(t)
	d, err := svc.Create(context.Background(), instructorID, listeningReq(), audioFile(t, "clip.mp3", mp3Header))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), otherID, d.ID), util.ErrPermissionDenied)
	assert.Len(t, store.rows, 1)

	require.NoError(t, svc.Delete(context.Background(), instructorID, d.ID))
	assert.Empty(t, store.rows)
	assert.Empty(t, storage.objects)

	assert.ErrorIs(t, svc.Delete(context.Background(), instructorID, d.ID), util.ErrQuestionNotFound)
}

func TestQuestionBankService_ListAndStats(t *testing.T) {
	svc, _, _ := newBank(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, instructorID, vocabReq(), nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, instructorID, vocabReq(), nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, instructorID, listeningReq(), audioFile(t, "clip.m4a", mp3Header))
	require.NoError(t, err)

	all, err := svc.List(ctx, instructorID, repository.TestQuestionFilter{LanguageID: 1})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	listening, err := svc.List(ctx, instructorID, repository.TestQuestionFilter{Category: model.CategoryListening})
	require.NoError(t, err)
	require.Len(t, listening, 1)
	assert.NotNil(t, listening[0].AudioURL)

	none, err := svc.List(ctx, otherID, repository.TestQuestionFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, []repository.QuestionCellCount{
		{Category: model.CategoryVocabulary, Difficulty: model.DifficultyEasy, Total: 2},
		{Category: model.CategoryListening, Difficulty: model.DifficultyEasy, Total: 1},
	}, stats.Cells)

	_, err = svc.Stats(ctx, 99)
	assert.ErrorIs(t, err, util.ErrLanguageNotFound)
}
