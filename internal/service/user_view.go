package service

import (
	"context"
	"errors"
	"strings"

	"test-platform/internal/model"
	"test-platform/internal/pkg/condition"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/i18n"
	"test-platform/internal/pkg/logger"
	"test-platform/internal/pkg/utils"
	"test-platform/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PosStep 视图排序步长
const PosStep int64 = 5000

// UserViewService 用户视图服务
type UserViewService struct {
	db *gorm.DB
}

// NewUserViewService 创建用户视图服务
func NewUserViewService(db *gorm.DB) *UserViewService {
	return &UserViewService{db: db}
}

// NextPos 计算下一个排序值
func (s *UserViewService) NextPos(ctx context.Context, scopeID, userID string, viewType model.UserViewType) (int64, error) {
	return nextPos(ctx, repository.NewUserViewRepository(s.db), scopeID, userID, viewType)
}

func nextPos(ctx context.Context, repo *repository.UserViewRepository, scopeID, userID string, viewType model.UserViewType) (int64, error) {
	last, err := repo.LastPos(ctx, scopeID, userID, string(viewType))
	if err != nil {
		return 0, err
	}
	return last + PosStep, nil
}

// Get 获取视图详情，内置视图按名称匹配，不携带条件
func (s *UserViewService) Get(ctx context.Context, id string, viewType model.UserViewType, userID string) (*model.UserViewDTO, error) {
	if internal, ok := model.FindInternalUserView(id); ok {
		item := s.internalItem(ctx, internal, "", viewType, userID)
		return &model.UserViewDTO{
			ID:         item.ID,
			Name:       item.Name,
			UserID:     item.UserID,
			ViewType:   item.ViewType,
			SearchMode: item.SearchMode,
			Pos:        item.Pos,
			Internal:   true,
			Conditions: []model.CombineCondition{},
		}, nil
	}

	view, err := repository.NewUserViewRepository(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(userID, view); err != nil {
		return nil, err
	}

	conditions, err := loadConditions(ctx, repository.NewUserViewConditionRepository(s.db), view.ID)
	if err != nil {
		return nil, err
	}
	return toUserViewDTO(view, conditions), nil
}

// Add 新增自定义视图
func (s *UserViewService) Add(ctx context.Context, req *model.UserViewAddRequest, viewType model.UserViewType, userID string) (*model.UserViewDTO, error) {
	now := model.NowMillis()
	view := &model.UserView{
		ID:         utils.NextID(),
		Name:       req.Name,
		UserID:     userID,
		ScopeID:    req.ScopeID,
		ViewType:   string(viewType),
		SearchMode: searchModeOrDefault(req.SearchMode),
		CreateTime: now,
		UpdateTime: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		views := repository.NewUserViewRepository(tx)
		if err := checkAddExist(ctx, views, view); err != nil {
			return err
		}

		pos, err := nextPos(ctx, views, req.ScopeID, userID, viewType)
		if err != nil {
			return err
		}
		view.Pos = pos

		if err := views.Create(ctx, view); err != nil {
			return mapDuplicate(err)
		}

		rows, err := encodeConditions(view.ID, req.Conditions)
		if err != nil {
			return err
		}
		return repository.NewUserViewConditionRepository(tx).BatchCreate(ctx, rows)
	})
	if err != nil {
		return nil, err
	}

	conditions := req.Conditions
	if conditions == nil {
		conditions = []model.CombineCondition{}
	}
	return toUserViewDTO(view, conditions), nil
}

// Update 修改自定义视图
// Conditions 非 nil 时整体替换原有条件
func (s *UserViewService) Update(ctx context.Context, req *model.UserViewUpdateRequest, viewType model.UserViewType, userID string) (*model.UserViewDTO, error) {
	var (
		view       *model.UserView
		conditions []model.CombineCondition
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		views := repository.NewUserViewRepository(tx)
		conditionRepo := repository.NewUserViewConditionRepository(tx)

		origin, err := views.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if err := checkOwner(userID, origin); err != nil {
			return err
		}
		if err := checkUpdateExist(ctx, views, req.Name, origin, userID); err != nil {
			return err
		}

		updated := *origin
		updated.ViewType = string(viewType)
		updated.UpdateTime = model.NowMillis()
		fields := map[string]interface{}{
			"view_type":   updated.ViewType,
			"update_time": updated.UpdateTime,
		}
		if strings.TrimSpace(req.Name) != "" {
			updated.Name = req.Name
			fields["name"] = req.Name
		}
		if req.SearchMode != "" {
			updated.SearchMode = req.SearchMode
			fields["search_mode"] = req.SearchMode
		}
		if err := views.UpdateFields(ctx, origin.ID, fields); err != nil {
			return mapDuplicate(err)
		}
		view = &updated

		if req.Conditions == nil {
			conditions, err = loadConditions(ctx, conditionRepo, origin.ID)
			return err
		}

		// 先删除再新增
		if err := conditionRepo.DeleteByViewID(ctx, origin.ID); err != nil {
			return err
		}
		rows, err := encodeConditions(origin.ID, req.Conditions)
		if err != nil {
			return err
		}
		if err := conditionRepo.BatchCreate(ctx, rows); err != nil {
			return err
		}
		conditions = req.Conditions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserViewDTO(view, conditions), nil
}

// Delete 删除自定义视图及其条件，只能删除自己的视图
func (s *UserViewService) Delete(ctx context.Context, id, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		views := repository.NewUserViewRepository(tx)
		view, err := views.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkOwner(userID, view); err != nil {
			return err
		}
		if err := repository.NewUserViewConditionRepository(tx).DeleteByViewID(ctx, id); err != nil {
			return err
		}
		return views.Delete(ctx, id)
	})
}

// GroupedList 按内置视图和自定义视图分组返回
func (s *UserViewService) GroupedList(ctx context.Context, scopeID string, viewType model.UserViewType, userID string) (*model.UserViewListGroupedDTO, error) {
	internalViews := viewType.InternalViews()
	grouped := &model.UserViewListGroupedDTO{
		InternalViews: make([]model.UserViewItem, 0, len(internalViews)),
	}
	for _, v := range internalViews {
		grouped.InternalViews = append(grouped.InternalViews, s.internalItem(ctx, v, scopeID, viewType, userID))
	}

	views, err := repository.NewUserViewRepository(s.db).List(ctx, userID, scopeID, string(viewType))
	if err != nil {
		return nil, err
	}
	grouped.CustomViews = make([]model.UserViewItem, 0, len(views))
	for i := range views {
		grouped.CustomViews = append(grouped.CustomViews, toUserViewItem(&views[i]))
	}
	return grouped, nil
}

// List 自定义视图在前，内置视图在后
func (s *UserViewService) List(ctx context.Context, scopeID string, viewType model.UserViewType, userID string) ([]model.UserViewItem, error) {
	grouped, err := s.GroupedList(ctx, scopeID, viewType, userID)
	if err != nil {
		return nil, err
	}
	return append(grouped.CustomViews, grouped.InternalViews...), nil
}

func (s *UserViewService) internalItem(ctx context.Context, v model.InternalUserView, scopeID string, viewType model.UserViewType, userID string) model.UserViewItem {
	return model.UserViewItem{
		ID:         v.Name(),
		Name:       i18n.T(ctx, v.TranslationKey()),
		UserID:     userID,
		ScopeID:    scopeID,
		ViewType:   string(viewType),
		SearchMode: model.SearchModeAnd,
		Pos:        v.Pos(),
		Internal:   true,
	}
}

// checkAddExist 同一用户、范围、类型下名称不能重复
func checkAddExist(ctx context.Context, repo *repository.UserViewRepository, view *model.UserView) error {
	count, err := repo.CountByName(ctx, view.UserID, view.ScopeID, view.ViewType, view.Name, "")
	if err != nil {
		return err
	}
	if count > 0 {
		return errcode.ErrUserViewExist
	}
	return nil
}

// checkUpdateExist 名称为空时不校验，排除视图自身
func checkUpdateExist(ctx context.Context, repo *repository.UserViewRepository, name string, origin *model.UserView, userID string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	count, err := repo.CountByName(ctx, userID, origin.ScopeID, origin.ViewType, name, origin.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errcode.ErrUserViewExist
	}
	return nil
}

// checkOwner 只能操作自己的视图，视图不存在同样视为无权限
func checkOwner(userID string, view *model.UserView) error {
	if view == nil || view.UserID != userID {
		return errcode.ErrCheckOwner
	}
	return nil
}

func mapDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errcode.ErrUserViewExist
	}
	return err
}

func searchModeOrDefault(mode string) string {
	if mode == "" {
		return model.SearchModeAnd
	}
	return mode
}

func encodeConditions(userViewID string, conditions []model.CombineCondition) ([]model.UserViewCondition, error) {
	rows := make([]model.UserViewCondition, 0, len(conditions))
	for _, c := range conditions {
		raw, valueType, err := condition.Encode(c.Value)
		if err != nil {
			return nil, errcode.ErrInternal.Wrap(err)
		}
		rows = append(rows, model.UserViewCondition{
			ID:              utils.NextID(),
			UserViewID:      userViewID,
			Name:            c.Name,
			Value:           raw,
			ValueType:       string(valueType),
			CustomField:     c.CustomField,
			CustomFieldType: c.CustomFieldType,
			Operator:        c.Operator,
		})
	}
	return rows, nil
}

func loadConditions(ctx context.Context, repo *repository.UserViewConditionRepository, userViewID string) ([]model.CombineCondition, error) {
	rows, err := repo.ListByViewID(ctx, userViewID)
	if err != nil {
		return nil, err
	}

	conditions := make([]model.CombineCondition, 0, len(rows))
	for _, row := range rows {
		value, err := condition.Decode(row.ValueType, row.Value)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"user_view_id": userViewID,
				"condition_id": row.ID,
				"value_type":   row.ValueType,
			}).WithError(err).Error("decode user view condition failed")
			return nil, errcode.ErrInternal.Wrap(err)
		}
		conditions = append(conditions, model.CombineCondition{
			Name:            row.Name,
			Operator:        row.Operator,
			Value:           value,
			CustomField:     row.CustomField,
			CustomFieldType: row.CustomFieldType,
		})
	}
	return conditions, nil
}

func toUserViewItem(view *model.UserView) model.UserViewItem {
	return model.UserViewItem{
		ID:         view.ID,
		Name:       view.Name,
		UserID:     view.UserID,
		ScopeID:    view.ScopeID,
		ViewType:   view.ViewType,
		SearchMode: view.SearchMode,
		Pos:        view.Pos,
		CreateTime: view.CreateTime,
		UpdateTime: view.UpdateTime,
	}
}

func toUserViewDTO(view *model.UserView, conditions []model.CombineCondition) *model.UserViewDTO {
	return &model.UserViewDTO{
		ID:         view.ID,
		Name:       view.Name,
		UserID:     view.UserID,
		ScopeID:    view.ScopeID,
		ViewType:   view.ViewType,
		SearchMode: view.SearchMode,
		Pos:        view.Pos,
		CreateTime: view.CreateTime,
		UpdateTime: view.UpdateTime,
		Conditions: conditions,
	}
}
