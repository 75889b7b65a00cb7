package postgres

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryTable describes how one catalog table is read.
type categoryTable struct {
	name string
	// secondary is the non-title column matched against search terms.
	secondary string
	// description is projected as the item description.
	description string
}

var categoryTables = map[entity.Category]categoryTable{
	entity.CategoryBook:       {name: model.BookModel{}.TableName(), secondary: "description", description: "description"},
	entity.CategoryStationery: {name: model.StationeryModel{}.TableName(), secondary: "description", description: "description"},
	entity.CategoryUniform:    {name: model.UniformModel{}.TableName(), secondary: "condition", description: "title"},
}

// projectionRow is the scan target for list and search queries.
type projectionRow struct {
	ID            int64
	Title         string
	Description   string
	SecondaryText string
	Price         float64
	Count         int
	IsFeatured    bool
	IsSold        bool
}

// catalogRepository implements repository.CatalogRepository over the three item tables.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository returns the repository as a domain.CatalogRepository interface.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) Create(ctx context.Context, item *entity.Item) error {
	row, err := fromItemDomain(item)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrItemCreationFailed.WrapMessage("owner does not exist")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+string(item.Category))
	}

	cols := listingColumnsOf(row)
	item.ID = cols.ID
	item.CreatedAt = cols.CreatedAt

	return nil
}

func (repo *catalogRepository) FindByID(ctx context.Context, category entity.Category, id int64) (*entity.Item, error) {
	var dest any
	switch category {
	case entity.CategoryBook:
		dest = &model.BookModel{}
	case entity.CategoryStationery:
		dest = &model.StationeryModel{}
	case entity.CategoryUniform:
		dest = &model.UniformModel{}
	default:
		return nil, domainerrors.ErrInvalidCategory
	}

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", category)
	}

	return toItemDomain(dest), nil
}

func (repo *catalogRepository) ListAvailable(ctx context.Context, category entity.Category) ([]entity.ItemProjection, error) {
	table, ok := categoryTables[category]
	if !ok {
		return nil, domainerrors.ErrInvalidCategory
	}

	var rows []projectionRow
	err := repo.projectionQuery(ctx, table).
		Where("is_sold = ?", false).
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", category)
	}

	return toProjections(category, rows), nil
}

func (repo *catalogRepository) SearchByTerms(ctx context.Context, category entity.Category, terms []string) ([]entity.ItemProjection, error) {
	table, ok := categoryTables[category]
	if !ok {
		return nil, domainerrors.ErrInvalidCategory
	}
	if len(terms) == 0 {
		return nil, nil
	}

	clauses := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)*2)
	for _, term := range terms {
		pattern := "%" + escapeLike(term) + "%"
		clauses = append(clauses, "(title ILIKE ? OR "+table.secondary+" ILIKE ?)")
		args = append(args, pattern, pattern)
	}

	var rows []projectionRow
	err := repo.projectionQuery(ctx, table).
		Where(strings.Join(clauses, " OR "), args...).
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s", category)
	}

	return toProjections(category, rows), nil
}

func (repo *catalogRepository) projectionQuery(ctx context.Context, table categoryTable) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table(table.name).
		Select("id, title, " + table.description + " AS description, " + table.secondary +
			" AS secondary_text, price, count, is_featured, is_sold")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a term match literally inside a LIKE pattern.
// PostgreSQL uses backslash as the default LIKE escape character.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// --- Mapper Functions ---

func toProjections(category entity.Category, rows []projectionRow) []entity.ItemProjection {
	out := make([]entity.ItemProjection, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.ItemProjection{
			ID:            r.ID,
			Category:      category,
			Title:         r.Title,
			Description:   r.Description,
			SecondaryText: r.SecondaryText,
			Price:         r.Price,
			Count:         r.Count,
			IsFeatured:    r.IsFeatured,
			IsSold:        r.IsSold,
		})
	}

	return out
}

func fromItemDomain(item *entity.Item) (any, error) {
	cols := model.ListingColumns{
		ID:                   item.ID,
		UserID:               item.OwnerID,
		Title:                item.Title,
		Price:                item.Price,
		Count:                item.Count,
		IsSold:               item.IsSold,
		IsFeatured:           item.IsFeatured,
		ThumbnailKey:         item.ThumbnailKey,
		ThumbnailContentType: item.ThumbnailContentType,
		CreatedAt:            item.CreatedAt,
	}

	switch item.Category {
	case entity.CategoryBook:
		if item.Book == nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("book details missing")
		}

		return &model.BookModel{
			ListingColumns:  cols,
			Description:     item.Description,
			FileKey:         item.Book.FileKey,
			FileName:        item.Book.FileName,
			FileContentType: item.Book.FileContentType,
		}, nil
	case entity.CategoryStationery:
		var keys []string
		if item.Stationery != nil {
			keys = item.Stationery.AdditionalImageKeys
		}
		if keys == nil {
			keys = []string{}
		}

		return &model.StationeryModel{
			ListingColumns:      cols,
			Description:         item.Description,
			AdditionalImageKeys: keys,
		}, nil
	case entity.CategoryUniform:
		if item.Uniform == nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("uniform details missing")
		}

		return &model.UniformModel{
			ListingColumns: cols,
			Size:           item.Uniform.Size,
			Condition:      string(item.Uniform.Condition),
		}, nil
	default:
		return nil, domainerrors.ErrInvalidCategory
	}
}

func listingColumnsOf(row any) model.ListingColumns {
	switch m := row.(type) {
	case *model.BookModel:
		return m.ListingColumns
	case *model.StationeryModel:
		return m.ListingColumns
	case *model.UniformModel:
		return m.ListingColumns
	default:
		return model.ListingColumns{}
	}
}

func toItemDomain(row any) *entity.Item {
	var item *entity.Item
	fromColumns := func(category entity.Category, c model.ListingColumns) *entity.Item {
		return &entity.Item{
			ID:                   c.ID,
			Category:             category,
			OwnerID:              c.UserID,
			Title:                c.Title,
			Price:                c.Price,
			Count:                c.Count,
			IsFeatured:           c.IsFeatured,
			IsSold:               c.IsSold,
			ThumbnailKey:         c.ThumbnailKey,
			ThumbnailContentType: c.ThumbnailContentType,
			CreatedAt:            c.CreatedAt,
		}
	}

	switch m := row.(type) {
	case *model.BookModel:
		item = fromColumns(entity.CategoryBook, m.ListingColumns)
		item.Description = m.Description
		item.Book = &entity.BookDetails{
			FileKey:         m.FileKey,
			FileName:        m.FileName,
			FileContentType: m.FileContentType,
		}
	case *model.StationeryModel:
		item = fromColumns(entity.CategoryStationery, m.ListingColumns)
		item.Description = m.Description
		item.Stationery = &entity.StationeryDetails{AdditionalImageKeys: []string(m.AdditionalImageKeys)}
	case *model.UniformModel:
		item = fromColumns(entity.CategoryUniform, m.ListingColumns)
		item.Description = m.Title
		item.Uniform = &entity.UniformDetails{
			Size:      m.Size,
			Condition: entity.UniformCondition(m.Condition),
		}
	}

	return item
}
