package importing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publimais-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatCSV},
		{input: "CSV", want: FormatCSV},
		{input: " json ", want: FormatJSON},
		{input: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ImportPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPostRepo := mocks.NewMockPostRepository(ctrl)
	service := NewService(mockPostRepo, mocks.NewMockFollowerRepository(ctrl))

	t.Run("Importa CSV com rótulos legados e tags", func(t *testing.T) {
		input := "id,title,platform,type,likes,comments,shares,views,tags\n" +
			"1,Look do dia,Instagram,orgânico,120,14,6,3001,moda; verão\n" +
			"2,Review,youtube,campanha,200,20,10,2000,\n" +
			"3,Sem tipo,tiktok,,10,0,0,0,\n"

		expected := []domain.Post{
			{ID: 1, Title: "Look do dia", Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 120, Comments: 14, Shares: 6, Views: 3001, Tags: []string{"moda", "verão"}},
			{ID: 2, Title: "Review", Platform: domain.PlatformYouTube, Type: domain.PostTypeCampaign, Likes: 200, Comments: 20, Shares: 10, Views: 2000},
			{ID: 3, Title: "Sem tipo", Platform: domain.PlatformTikTok, Type: domain.PostTypeOrganic, Likes: 10},
		}
		mockPostRepo.EXPECT().SaveOrUpdate(1, expected).Return(nil)

		result, err := service.ImportPosts(1, FormatCSV, strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, &ImportResult{Kind: "posts", Format: FormatCSV, Imported: 3}, result)
	})

	t.Run("Importa JSON e mantém a última ocorrência de um ID", func(t *testing.T) {
		input := `[
			{"id": 5, "title": "Primeira", "platform": "tiktok", "type": "campaign", "views": 100},
			{"id": 5, "title": "Segunda", "platform": "tiktok", "type": "campaign", "views": 200, "tags": ["a", "b"]}
		]`

		mockPostRepo.EXPECT().SaveOrUpdate(2, []domain.Post{
			{ID: 5, Title: "Segunda", Platform: domain.PlatformTikTok, Type: domain.PostTypeCampaign, Views: 200, Tags: []string{"a", "b"}},
		}).Return(nil)

		result, err := service.ImportPosts(2, FormatJSON, strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
	})

	t.Run("Plataforma desconhecida aponta a linha", func(t *testing.T) {
		input := "id,platform\n1,instagram\n2,orkut\n"

		result, err := service.ImportPosts(1, FormatCSV, strings.NewReader(input))

		assert.Nil(t, result)
		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, 3, importErr.Row)
		assert.Equal(t, "platform", importErr.Field)
	})

	t.Run("Tipo desconhecido é rejeitado", func(t *testing.T) {
		input := `[{"id": 1, "platform": "instagram", "type": "publi"}]`

		_, err := service.ImportPosts(1, FormatJSON, strings.NewReader(input))

		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, 1, importErr.Row)
		assert.Equal(t, "type", importErr.Field)
	})

	t.Run("Tipo numérico no CSV é rejeitado", func(t *testing.T) {
		input := "id,platform,type,views\n1,instagram,2,10\n"

		result, err := service.ImportPosts(1, FormatCSV, strings.NewReader(input))

		assert.Nil(t, result)
		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, 2, importErr.Row)
		assert.Equal(t, "type", importErr.Field)
		assert.ErrorIs(t, err, domain.ErrUnknownPostType)
	})

	t.Run("Contagem fracionária ou acima de 2^53 é rejeitada", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			field string
		}{
			{name: "CSV com decimal", input: "id,platform,likes\n1,instagram,12.7\n", field: "likes"},
			{name: "ID fracionário", input: "id,platform\n1.5,instagram\n", field: "id"},
			{name: "Views acima de 2^53", input: "id,platform,views\n1,instagram,1e20\n", field: "views"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.ImportPosts(1, FormatCSV, strings.NewReader(tt.input))

				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, tt.field, importErr.Field)
				assert.ErrorIs(t, err, ErrInvalidValue)
			})
		}

		_, err := service.ImportPosts(1, FormatJSON, strings.NewReader(`[{"id": 1, "platform": "instagram", "shares": 3.2}]`))
		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, "shares", importErr.Field)
	})

	t.Run("Contagem negativa é rejeitada", func(t *testing.T) {
		input := "id,platform,likes\n1,instagram,-3\n"

		_, err := service.ImportPosts(1, FormatCSV, strings.NewReader(input))

		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, "likes", importErr.Field)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("ID ausente é rejeitado", func(t *testing.T) {
		_, err := service.ImportPosts(1, FormatJSON, strings.NewReader(`[{"platform": "instagram"}]`))

		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, "id", importErr.Field)
	})

	t.Run("Coluna obrigatória ausente", func(t *testing.T) {
		_, err := service.ImportPosts(1, FormatCSV, strings.NewReader("title,likes\nA,1\n"))

		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("Somente cabeçalho", func(t *testing.T) {
		_, err := service.ImportPosts(1, FormatCSV, strings.NewReader("id,platform\n\n"))

		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("Erro ao salvar", func(t *testing.T) {
		mockPostRepo.EXPECT().SaveOrUpdate(1, gomock.Any()).Return(errors.New("conexão perdida"))

		result, err := service.ImportPosts(1, FormatCSV, strings.NewReader("id,platform\n1,instagram\n"))

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "salvar posts importados")
	})
}

func TestService_ImportFollowers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFollowerRepo := mocks.NewMockFollowerRepository(ctrl)
	service := NewService(mocks.NewMockPostRepository(ctrl), mockFollowerRepo)
	ctx := context.Background()

	t.Run("Substitui o histórico", func(t *testing.T) {
		input := "month,followers,date\nJan,12000,2024-01-31\nFev,13800,2024-02-29\n"

		mockFollowerRepo.EXPECT().ReplaceHistory(ctx, 1, []domain.FollowerPoint{
			{Month: "Jan", Followers: 12000, Date: "2024-01-31"},
			{Month: "Fev", Followers: 13800, Date: "2024-02-29"},
		}).Return(nil)

		result, err := service.ImportFollowers(ctx, 1, FormatCSV, strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, "followers", result.Kind)
	})

	t.Run("Mês vazio é rejeitado", func(t *testing.T) {
		_, err := service.ImportFollowers(ctx, 1, FormatJSON, strings.NewReader(`[{"month": " ", "followers": 10}]`))

		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, "month", importErr.Field)
	})

	t.Run("Seguidores fracionários", func(t *testing.T) {
		_, err := service.ImportFollowers(ctx, 1, FormatCSV, strings.NewReader("month,followers\nJan,1200.5\n"))

		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, "followers", importErr.Field)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("Seguidores não numéricos", func(t *testing.T) {
		_, err := service.ImportFollowers(ctx, 1, FormatCSV, strings.NewReader("month,followers\nJan,muitos\n"))

		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, 2, importErr.Row)
	})
}

func TestService_ExportPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPostRepo := mocks.NewMockPostRepository(ctrl)
	service := NewService(mockPostRepo, mocks.NewMockFollowerRepository(ctrl))

	t.Run("Gera CSV com cabeçalho", func(t *testing.T) {
		mockPostRepo.EXPECT().ListByUser(1).Return([]domain.Post{
			{ID: 1, Title: "Look do dia", Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 120, Comments: 14, Shares: 6, Views: 3001, Tags: []string{"moda", "verão"}},
		}, nil)

		var buf bytes.Buffer
		err := service.ExportPosts(1, &buf)

		require.NoError(t, err)
		assert.Equal(t, "id,title,platform,type,likes,comments,shares,views,tags\n1,Look do dia,instagram,organic,120,14,6,3001,moda;verão\n", buf.String())
	})

	t.Run("Erro ao buscar posts", func(t *testing.T) {
		mockPostRepo.EXPECT().ListByUser(2).Return(nil, errors.New("timeout"))

		err := service.ExportPosts(2, &bytes.Buffer{})

		assert.ErrorContains(t, err, "erro ao buscar posts")
	})
}
