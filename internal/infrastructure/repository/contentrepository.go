package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"likenovel/internal/domain/content"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/utils"
)

// ContentStore adapts CrudRepository[M] to content.Store[E].
type ContentStore[E any, M any] struct {
	crud     *CrudRepository[M]
	filters  db.AllowList
	toEntity func(*M) *E
	toModel  func(*E) *M
	idOf     func(*M) int64
}

func newContentStore[E any, M any](
	crud *CrudRepository[M],
	filters db.AllowList,
	toEntity func(*M) *E,
	toModel func(*E) *M,
	idOf func(*M) int64,
) *ContentStore[E, M] {
	return &ContentStore[E, M]{crud: crud, filters: filters, toEntity: toEntity, toModel: toModel, idOf: idOf}
}

func (s *ContentStore[E, M]) List(ctx context.Context, f content.ListFilter) ([]*E, int64, error) {
	var scopes []Scope
	if f.ActiveOnly {
		scopes = append(scopes, db.UseYN())
	}
	for col, val := range s.filters.Filter(f.Filters) {
		col, val := col, val
		scopes = append(scopes, func(tx *gorm.DB) *gorm.DB { return tx.Where(col+" = ?", val) })
	}

	rows, total, err := s.crud.List(ctx, ListQuery{Page: f.Page, CountPerPage: f.CountPerPage, Scopes: scopes})
	if err != nil {
		return nil, 0, err
	}
	out := make([]*E, 0, len(rows))
	for i := range rows {
		out = append(out, s.toEntity(&rows[i]))
	}
	return out, total, nil
}

func (s *ContentStore[E, M]) Get(ctx context.Context, id int64) (*E, error) {
	m, err := s.crud.Get(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}
	return s.toEntity(m), nil
}

func (s *ContentStore[E, M]) Create(ctx context.Context, e *E, writerID int64) (int64, error) {
	m := s.toModel(e)
	if err := s.crud.Create(ctx, m, writerID); err != nil {
		return 0, err
	}
	return s.idOf(m), nil
}

func (s *ContentStore[E, M]) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	return s.crud.Update(ctx, id, fields, writerID)
}

func (s *ContentStore[E, M]) Delete(ctx context.Context, id int64) error {
	return s.crud.Delete(ctx, id)
}

// Lists with a pin column put pinned rows first; every list then runs newest update first.
// id breaks ties between rows written in the same second.
func pinnedFirst(tx *gorm.DB) *gorm.DB { return db.PinnedFirst()(tx).Order("id DESC") }

func latestFirst(tx *gorm.DB) *gorm.DB { return db.LatestFirst()(tx).Order("id DESC") }

type NoticeRepository struct {
	*ContentStore[content.Notice, models.NoticeModel]
}

func NewNoticeRepository(gdb *gorm.DB) *NoticeRepository {
	crud := NewCrudRepository[models.NoticeModel](gdb, CrudOptions{
		Creatable: db.NewAllowList("subject", "content", "primary_yn", "file_group_id", "use_yn"),
		Updatable: db.NewAllowList("subject", "content", "primary_yn", "file_group_id", "use_yn"),
		Order:     pinnedFirst,
		NotFound:  "NOT_FOUND_NOTICE",
	})
	return &NoticeRepository{newContentStore(crud, db.NewAllowList("primary_yn"),
		func(m *models.NoticeModel) *content.Notice {
			return &content.Notice{
				ID:          m.ID,
				Subject:     m.Subject,
				Content:     m.Content,
				Pinned:      m.PrimaryYN == constants.FlagYes,
				FileGroupID: m.FileGroupID,
				ViewCount:   m.ViewCount,
				Active:      m.UseYN == constants.FlagYes,
				CreatedDate: m.CreatedDate,
				UpdatedDate: m.UpdatedDate,
			}
		},
		func(e *content.Notice) *models.NoticeModel {
			return &models.NoticeModel{
				Subject:     e.Subject,
				Content:     e.Content,
				PrimaryYN:   utils.YN(e.Pinned),
				FileGroupID: e.FileGroupID,
				UseYN:       utils.YN(e.Active),
			}
		},
		func(m *models.NoticeModel) int64 { return m.ID },
	)}
}

// IncrementViewCount bumps view_count without touching the audit columns.
func (r *NoticeRepository) IncrementViewCount(ctx context.Context, id int64) error {
	err := r.crud.DB(ctx).Model(&models.NoticeModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	return wrapDB("bump notice view count", err)
}

func NewFaqRepository(gdb *gorm.DB) *ContentStore[content.Faq, models.FaqModel] {
	crud := NewCrudRepository[models.FaqModel](gdb, CrudOptions{
		Creatable: db.NewAllowList("faq_type", "subject", "content", "primary_yn", "use_yn"),
		Updatable: db.NewAllowList("faq_type", "subject", "content", "primary_yn", "use_yn"),
		Order:     pinnedFirst,
		NotFound:  "NOT_FOUND_FAQ",
	})
	return newContentStore(crud, db.NewAllowList("faq_type"),
		func(m *models.FaqModel) *content.Faq {
			return &content.Faq{
				ID:          m.ID,
				FaqType:     m.FaqType,
				Subject:     m.Subject,
				Content:     m.Content,
				Pinned:      m.PrimaryYN == constants.FlagYes,
				Active:      m.UseYN == constants.FlagYes,
				CreatedDate: m.CreatedDate,
			}
		},
		func(e *content.Faq) *models.FaqModel {
			return &models.FaqModel{
				FaqType:   e.FaqType,
				Subject:   e.Subject,
				Content:   e.Content,
				PrimaryYN: utils.YN(e.Pinned),
				UseYN:     utils.YN(e.Active),
			}
		},
		func(m *models.FaqModel) int64 { return m.ID },
	)
}

func NewCarouselRepository(gdb *gorm.DB) *ContentStore[content.Carousel, models.CarouselModel] {
	cols := []string{"division", "title", "image_id", "url", "show_order", "start_date", "end_date", "use_yn"}
	crud := NewCrudRepository[models.CarouselModel](gdb, CrudOptions{
		Creatable: db.NewAllowList(cols...),
		Updatable: db.NewAllowList(cols...),
		Order:     latestFirst,
		NotFound:  "NOT_FOUND_CAROUSEL",
	})
	return newContentStore(crud, db.NewAllowList("division"),
		func(m *models.CarouselModel) *content.Carousel {
			return &content.Carousel{
				ID:        m.ID,
				Division:  m.Division,
				Title:     m.Title,
				ImageID:   m.ImageID,
				URL:       m.URL,
				ShowOrder: m.ShowOrder,
				StartDate: m.StartDate,
				EndDate:   m.EndDate,
				Active:    m.UseYN == constants.FlagYes,
			}
		},
		func(e *content.Carousel) *models.CarouselModel {
			return &models.CarouselModel{
				Division:  e.Division,
				Title:     e.Title,
				ImageID:   e.ImageID,
				URL:       e.URL,
				ShowOrder: e.ShowOrder,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
				UseYN:     utils.YN(e.Active),
			}
		},
		func(m *models.CarouselModel) int64 { return m.ID },
	)
}

func NewPublisherPromotionRepository(gdb *gorm.DB) *ContentStore[content.PublisherPromotion, models.PublisherPromotionModel] {
	cols := []string{"product_id", "show_order", "start_date", "end_date", "use_yn"}
	crud := NewCrudRepository[models.PublisherPromotionModel](gdb, CrudOptions{
		Creatable: db.NewAllowList(cols...),
		Updatable: db.NewAllowList(cols...),
		Order:     latestFirst,
		NotFound:  "NOT_FOUND_PUBLISHER_PROMOTION",
	})
	return newContentStore(crud, db.NewAllowList("product_id"),
		func(m *models.PublisherPromotionModel) *content.PublisherPromotion {
			return &content.PublisherPromotion{
				ID:        m.ID,
				ProductID: m.ProductID,
				ShowOrder: m.ShowOrder,
				StartDate: m.StartDate,
				EndDate:   m.EndDate,
				Active:    m.UseYN == constants.FlagYes,
			}
		},
		func(e *content.PublisherPromotion) *models.PublisherPromotionModel {
			return &models.PublisherPromotionModel{
				ProductID: e.ProductID,
				ShowOrder: e.ShowOrder,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
				UseYN:     utils.YN(e.Active),
			}
		},
		func(m *models.PublisherPromotionModel) int64 { return m.ID },
	)
}

type PopupRepository struct {
	*ContentStore[content.Popup, models.PopupModel]
}

func NewPopupRepository(gdb *gorm.DB) *PopupRepository {
	cols := []string{"url", "image_path", "start_date", "end_date", "use_yn"}
	crud := NewCrudRepository[models.PopupModel](gdb, CrudOptions{
		Creatable: db.NewAllowList(cols...),
		Updatable: db.NewAllowList(cols...),
		Order:     latestFirst,
		NotFound:  "NOT_FOUND_POPUP",
	})
	return &PopupRepository{newContentStore(crud, nil, popupEntity,
		func(e *content.Popup) *models.PopupModel {
			return &models.PopupModel{
				URL:       e.URL,
				ImagePath: e.ImagePath,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
				UseYN:     utils.YN(e.Active),
			}
		},
		func(m *models.PopupModel) int64 { return m.ID },
	)}
}

func popupEntity(m *models.PopupModel) *content.Popup {
	return &content.Popup{
		ID:        m.ID,
		URL:       m.URL,
		ImagePath: m.ImagePath,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Active:    m.UseYN == constants.FlagYes,
	}
}

func (r *PopupRepository) Current(ctx context.Context, now time.Time) (*content.Popup, error) {
	var m models.PopupModel
	err := r.crud.DB(ctx).
		Scopes(db.UseYN()).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Scopes(latestFirst).
		First(&m).Error
	if found, err := db.IgnoreNotFound(err); err != nil || !found {
		return nil, wrapDB("get current popup", err)
	}
	return popupEntity(&m), nil
}

type CommonCodeRepository struct {
	*ContentStore[content.CommonCode, models.CommonCodeModel]
}

func NewCommonCodeRepository(gdb *gorm.DB) *CommonCodeRepository {
	crud := NewCrudRepository[models.CommonCodeModel](gdb, CrudOptions{
		Creatable: db.NewAllowList("code_group", "code_key", "code_value", "code_desc", "use_yn"),
		Updatable: db.NewAllowList("code_value", "code_desc", "use_yn"),
		Order:     latestFirst,
		NotFound:  "NOT_FOUND_COMMON_CODE",
	})
	return &CommonCodeRepository{newContentStore(crud, db.NewAllowList("code_group"), commonCodeEntity,
		func(e *content.CommonCode) *models.CommonCodeModel {
			return &models.CommonCodeModel{
				CodeGroup: e.CodeGroup,
				CodeKey:   e.CodeKey,
				CodeValue: e.CodeValue,
				CodeDesc:  e.CodeDesc,
				UseYN:     utils.YN(e.Active),
			}
		},
		func(m *models.CommonCodeModel) int64 { return m.ID },
	)}
}

func commonCodeEntity(m *models.CommonCodeModel) *content.CommonCode {
	return &content.CommonCode{
		ID:        m.ID,
		CodeGroup: m.CodeGroup,
		CodeKey:   m.CodeKey,
		CodeValue: m.CodeValue,
		CodeDesc:  m.CodeDesc,
		Active:    m.UseYN == constants.FlagYes,
	}
}

func (r *CommonCodeRepository) ListGroup(ctx context.Context, group string) ([]*content.CommonCode, error) {
	var rows []models.CommonCodeModel
	if err := r.crud.DB(ctx).
		Where("code_group = ?", group).
		Scopes(db.UseYN()).
		Order("code_key ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapDB("list common codes", err)
	}
	out := make([]*content.CommonCode, 0, len(rows))
	for i := range rows {
		out = append(out, commonCodeEntity(&rows[i]))
	}
	return out, nil
}

type EvaluationRepository struct {
	*ContentStore[content.Evaluation, models.ProductEvaluationModel]
}

func NewEvaluationRepository(gdb *gorm.DB) *EvaluationRepository {
	crud := NewCrudRepository[models.ProductEvaluationModel](gdb, CrudOptions{
		Creatable: db.NewAllowList("product_id", "episode_id", "user_id", "eval_code"),
		Updatable: db.NewAllowList("eval_code"),
		Order:     latestFirst,
		NotFound:  "NOT_FOUND_EVALUATION",
	})
	return &EvaluationRepository{newContentStore(crud, db.NewAllowList("product_id", "episode_id", "user_id"),
		func(m *models.ProductEvaluationModel) *content.Evaluation {
			return &content.Evaluation{
				ID:          m.ID,
				ProductID:   m.ProductID,
				EpisodeID:   m.EpisodeID,
				UserID:      m.UserID,
				EvalCode:    m.EvalCode,
				CreatedDate: m.CreatedDate,
			}
		},
		func(e *content.Evaluation) *models.ProductEvaluationModel {
			return &models.ProductEvaluationModel{
				ProductID: e.ProductID,
				EpisodeID: e.EpisodeID,
				UserID:    e.UserID,
				EvalCode:  e.EvalCode,
			}
		},
		func(m *models.ProductEvaluationModel) int64 { return m.ID },
	)}
}

func (r *EvaluationRepository) Exists(ctx context.Context, userID, productID, episodeID int64) (bool, error) {
	var count int64
	if err := r.crud.DB(ctx).Model(&models.ProductEvaluationModel{}).
		Where("user_id = ? AND product_id = ? AND episode_id = ?", userID, productID, episodeID).
		Count(&count).Error; err != nil {
		return false, wrapDB("check evaluation", err)
	}
	return count > 0, nil
}

func NewReviewRepository(gdb *gorm.DB) *ContentStore[content.Review, models.ProductReviewModel] {
	crud := NewCrudRepository[models.ProductReviewModel](gdb, CrudOptions{
		Creatable: db.NewAllowList("product_id", "episode_id", "user_id", "review_text", "open_yn"),
		Updatable: db.NewAllowList("review_text", "open_yn"),
		Order:     latestFirst,
		NotFound:  "NOT_FOUND_REVIEW",
	})
	return newContentStore(crud, db.NewAllowList("product_id", "episode_id", "user_id"),
		func(m *models.ProductReviewModel) *content.Review {
			return &content.Review{
				ID:          m.ID,
				ProductID:   m.ProductID,
				EpisodeID:   m.EpisodeID,
				UserID:      m.UserID,
				ReviewText:  m.ReviewText,
				Open:        m.OpenYN == constants.FlagYes,
				CreatedDate: m.CreatedDate,
			}
		},
		func(e *content.Review) *models.ProductReviewModel {
			return &models.ProductReviewModel{
				ProductID:  e.ProductID,
				EpisodeID:  e.EpisodeID,
				UserID:     e.UserID,
				ReviewText: e.ReviewText,
				OpenYN:     utils.YN(e.Open),
			}
		},
		func(m *models.ProductReviewModel) int64 { return m.ID },
	)
}
