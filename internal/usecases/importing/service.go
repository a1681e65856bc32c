package importing

import (
	"context"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/log"
	"github.com/vfg2006/publimais-api/pkg/metrics"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

var postExportHeaders = []string{"id", "title", "platform", "type", "likes", "comments", "shares", "views", "tags"}

// ImportResult resume uma importação concluída
type ImportResult struct {
	Kind     string `json:"kind"`
	Format   Format `json:"format"`
	Imported int    `json:"imported"`
}

type Importer interface {
	ImportPosts(userID int, format Format, r io.Reader) (*ImportResult, error)
	ImportFollowers(ctx context.Context, userID int, format Format, r io.Reader) (*ImportResult, error)
	ExportPosts(userID int, w io.Writer) error
}

type Service struct {
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository
}

func NewService(postRepo repository.PostRepository, followerRepo repository.FollowerRepository) Importer {
	return &Service{
		postRepo:     postRepo,
		followerRepo: followerRepo,
	}
}

func readRecords(format Format, r io.Reader, required ...string) ([]Record, error) {
	var (
		records []Record
		err     error
	)

	switch format {
	case FormatCSV:
		var headers []string
		headers, records, err = parseCSV(r)
		if err != nil {
			return nil, err
		}
		for _, column := range required {
			if !slices.Contains(headers, column) {
				return nil, errors.Wrap(ErrMissingColumn, column)
			}
		}
	case FormatJSON:
		records, err = parseJSON(r)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidValue, err.Error())
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	return records, nil
}

// maxExactInteger é o maior inteiro que um float64 representa sem perda
const maxExactInteger = 1 << 53

// integerHook recusa números fracionários ou grandes demais para campos inteiros,
// que o modo weak truncaria em silêncio
func integerHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	v := reflect.ValueOf(data).Float()
	if v != math.Trunc(v) {
		return nil, fmt.Errorf("%v não é inteiro", v)
	}
	if math.Abs(v) > maxExactInteger {
		return nil, fmt.Errorf("%v excede o limite de %d", v, int64(maxExactInteger))
	}
	return data, nil
}

func decodeRecord(values map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integerHook,
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(";"),
		),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}

// decodeField tenta extrair o nome do campo da mensagem do mapstructure
func decodeField(err error) string {
	var merr *mapstructure.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		msg := merr.Errors[0]
		if start := strings.Index(msg, "'"); start >= 0 {
			if end := strings.Index(msg[start+1:], "'"); end > 0 {
				return msg[start+1 : start+1+end]
			}
		}
	}
	return ""
}

func (s *Service) ImportPosts(userID int, format Format, r io.Reader) (*ImportResult, error) {
	records, err := readRecords(format, r, "id", "platform")
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(records))
	seen := make(map[int64]int, len(records))
	for _, record := range records {
		post, err := toPost(record)
		if err != nil {
			return nil, err
		}

		// ID repetido no mesmo arquivo: vale a última ocorrência
		if idx, ok := seen[post.ID]; ok {
			posts[idx] = *post
			continue
		}
		seen[post.ID] = len(posts)
		posts = append(posts, *post)
	}

	if err := s.postRepo.SaveOrUpdate(userID, posts); err != nil {
		return nil, errors.Wrap(err, "salvar posts importados")
	}

	metrics.IncImportedRows("posts", string(format), len(posts))
	log.L.WithFields(log.Fields{"user_id": userID, "format": format, "rows": len(posts)}).Info("Posts importados")

	return &ImportResult{Kind: "posts", Format: format, Imported: len(posts)}, nil
}

func toPost(record Record) (*domain.Post, error) {
	if t, ok := record.Values["type"].(string); ok && strings.TrimSpace(t) == "" {
		delete(record.Values, "type")
	}
	if tags, ok := record.Values["tags"].(string); ok && strings.TrimSpace(tags) == "" {
		delete(record.Values, "tags")
	}

	var post domain.Post
	if err := decodeRecord(record.Values, &post); err != nil {
		return nil, rowError(record.Row, decodeField(err), errors.Wrap(ErrInvalidValue, err.Error()))
	}

	if post.ID <= 0 {
		return nil, rowError(record.Row, "id", ErrInvalidValue)
	}
	if !post.Platform.Valid() {
		return nil, rowError(record.Row, "platform", domain.ErrUnknownPlatform)
	}
	if post.Type == "" {
		post.Type = domain.PostTypeOrganic
	}
	if !post.Type.Valid() {
		return nil, rowError(record.Row, "type", domain.ErrUnknownPostType)
	}

	for field, value := range map[string]int64{"likes": post.Likes, "comments": post.Comments, "shares": post.Shares, "views": post.Views} {
		if value < 0 {
			return nil, rowError(record.Row, field, errors.Wrap(ErrInvalidValue, "contagem negativa"))
		}
	}

	for i := range post.Tags {
		post.Tags[i] = strings.TrimSpace(post.Tags[i])
	}

	return &post, nil
}

// ImportFollowers substitui toda a série de seguidores do usuário
func (s *Service) ImportFollowers(ctx context.Context, userID int, format Format, r io.Reader) (*ImportResult, error) {
	records, err := readRecords(format, r, "month", "followers")
	if err != nil {
		return nil, err
	}

	points := make([]domain.FollowerPoint, 0, len(records))
	for _, record := range records {
		var point domain.FollowerPoint
		if err := decodeRecord(record.Values, &point); err != nil {
			return nil, rowError(record.Row, decodeField(err), errors.Wrap(ErrInvalidValue, err.Error()))
		}

		point.Month = strings.TrimSpace(point.Month)
		if point.Month == "" {
			return nil, rowError(record.Row, "month", ErrInvalidValue)
		}
		if point.Followers < 0 {
			return nil, rowError(record.Row, "followers", errors.Wrap(ErrInvalidValue, "contagem negativa"))
		}

		points = append(points, point)
	}

	if err := s.followerRepo.ReplaceHistory(ctx, userID, points); err != nil {
		return nil, errors.Wrap(err, "salvar histórico de seguidores")
	}

	metrics.IncImportedRows("followers", string(format), len(points))
	log.L.WithFields(log.Fields{"user_id": userID, "format": format, "rows": len(points)}).Info("Histórico de seguidores importado")

	return &ImportResult{Kind: "followers", Format: format, Imported: len(points)}, nil
}

func (s *Service) ExportPosts(userID int, w io.Writer) error {
	posts, err := s.postRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("erro ao buscar posts: %w", err)
	}

	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, []string{
			strconv.FormatInt(post.ID, 10),
			post.Title,
			post.Platform.String(),
			post.Type.String(),
			strconv.FormatInt(post.Likes, 10),
			strconv.FormatInt(post.Comments, 10),
			strconv.FormatInt(post.Shares, 10),
			strconv.FormatInt(post.Views, 10),
			strings.Join(post.Tags, ";"),
		})
	}

	return joinCSV(w, postExportHeaders, rows)
}
