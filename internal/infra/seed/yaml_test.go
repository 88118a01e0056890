package seed

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/domain/entity"
	catalogUC "magazine-catalog/internal/usecase/catalog"
)

func newService() *catalogUC.Service {
	return catalogUC.NewService(entity.NewRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadFile(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	st, err := LoadFile(ctx, filepath.Join("testdata", "catalog.yaml"), svc)

	require.NoError(t, err)
	assert.Equal(t, Stats{Authors: 3, Magazines: 3, Articles: 6, Updates: 1}, st)

	canvas, err := svc.FindMagazine("Canvas")
	require.NoError(t, err)
	assert.Equal(t, "Visual Arts", canvas.Category())

	top, ok := svc.TopPublisher(ctx)
	require.True(t, ok)
	assert.Equal(t, "ByteWeekly", top.Name)

	ada, err := svc.AuthorReport(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech", "Visual Arts"}, ada.TopicAreas)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), newService())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed file")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
		want    Stats
	}{
		{
			name:    "malformed YAML",
			yaml:    "authors: [",
			wantMsg: "parse seed YAML",
		},
		{
			name:    "unknown field",
			yaml:    "authors:\n  - name: Ada\n    age: 36\n",
			wantMsg: "parse seed YAML",
		},
		{
			name:    "empty author name",
			yaml:    "authors:\n  - name: Ada\n  - name: \"\"\n",
			wantErr: entity.ErrValidationFailed,
			wantMsg: "authors[1]",
			want:    Stats{Authors: 1},
		},
		{
			name:    "magazine name too long",
			yaml:    "magazines:\n  - name: An Exceedingly Long Name\n    category: Tech\n",
			wantErr: entity.ErrValidationFailed,
			wantMsg: "magazines[0]",
		},
		{
			name: "article by unknown author",
			yaml: "magazines:\n  - name: ByteWeekly\n    category: Tech\n" +
				"articles:\n  - author: Nobody\n    magazine: ByteWeekly\n    title: Intro to Pointers\n",
			wantErr: catalogUC.ErrAuthorNotFound,
			wantMsg: "articles[0]",
			want:    Stats{Magazines: 1},
		},
		{
			name: "article title too short",
			yaml: "authors:\n  - name: Ada\nmagazines:\n  - name: ByteWeekly\n    category: Tech\n" +
				"articles:\n  - author: Ada\n    magazine: ByteWeekly\n    title: Hi\n",
			wantErr: entity.ErrValidationFailed,
			wantMsg: "articles[0]",
			want:    Stats{Authors: 1, Magazines: 1},
		},
		{
			name:    "empty update",
			yaml:    "magazines:\n  - name: ByteWeekly\n    category: Tech\nupdates:\n  - magazine: ByteWeekly\n",
			wantMsg: "sets neither name nor category",
			want:    Stats{Magazines: 1},
		},
		{
			name:    "invalid rename",
			yaml:    "magazines:\n  - name: ByteWeekly\n    category: Tech\nupdates:\n  - magazine: ByteWeekly\n    name: B\n",
			wantErr: entity.ErrValidationFailed,
			wantMsg: "updates[0]",
			want:    Stats{Magazines: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Load(context.Background(), strings.NewReader(tt.yaml), newService())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestLoad_RenameThenRecategorize(t *testing.T) {
	svc := newService()
	doc := "magazines:\n  - name: ByteWeekly\n    category: Tech\n" +
		"updates:\n  - magazine: ByteWeekly\n    name: ByteDaily\n    category: Science\n"

	st, err := Load(context.Background(), strings.NewReader(doc), svc)

	require.NoError(t, err)
	assert.Equal(t, 1, st.Updates)
	m, err := svc.FindMagazine("ByteDaily")
	require.NoError(t, err)
	assert.Equal(t, "Science", m.Category())
}

func TestLoad_EmptyDocument(t *testing.T) {
	st, err := Load(context.Background(), strings.NewReader(""), newService())

	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}
