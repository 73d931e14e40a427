package service

import (
	"context"
	"strings"

	"test-platform/internal/model"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/logger"
	"test-platform/internal/pkg/utils"
	"test-platform/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MessageTaskService 项目消息通知配置服务
type MessageTaskService struct {
	db *gorm.DB
}

// NewMessageTaskService 创建消息任务服务
func NewMessageTaskService(db *gorm.DB) *MessageTaskService {
	return &MessageTaskService{db: db}
}

// Save 保存消息任务，每个接收人一条记录
// 部分接收人无效时仍保存有效部分，由调用方根据 Unresolved 返回部分成功
func (s *MessageTaskService) Save(ctx context.Context, req *model.MessageTaskRequest, userID string) (*model.MessageTaskSaveResult, error) {
	projects := repository.NewProjectRepository(s.db)

	project, err := projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errcode.ErrProjectNotExist
	}

	result := &model.MessageTaskSaveResult{
		Receivers:  []string{},
		Unresolved: []string{},
	}
	receiverIDs := utils.Distinct(req.ReceiverIDs)
	if len(receiverIDs) == 0 {
		return result, nil
	}

	valid, unresolved, err := s.resolveReceivers(ctx, projects, req.ProjectID, receiverIDs)
	if err != nil {
		return nil, err
	}
	result.Unresolved = unresolved
	if len(valid) == 0 {
		return nil, errcode.ErrReceiverNotExist.WithDetail(strings.Join(unresolved, ","))
	}

	robot, err := s.resolveRobot(ctx, projects, req.ProjectID, req.RobotID)
	if err != nil {
		return nil, err
	}
	result.RobotID = robot.ID

	enable := req.Enable != nil && *req.Enable
	testID := req.TestID
	if testID == "" {
		testID = model.DefaultTestID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := repository.NewMessageTaskRepository(tx)
		now := model.NowMillis()
		for _, receiver := range valid {
			existing, err := tasks.FindByKey(ctx, req.TaskType, req.Event, receiver, req.ProjectID)
			if err != nil {
				return err
			}
			if existing != nil {
				err = tasks.UpdateFields(ctx, existing.ID, map[string]interface{}{
					"enable":           enable,
					"project_robot_id": robot.ID,
					"update_user":      userID,
					"update_time":      now,
				})
				if err != nil {
					return err
				}
				result.UpdatedCount++
				continue
			}

			task := &model.MessageTask{
				ID:                 utils.NextID(),
				ProjectID:          req.ProjectID,
				TaskType:           req.TaskType,
				Event:              req.Event,
				Receiver:           receiver,
				ProjectRobotID:     robot.ID,
				TestID:             testID,
				Enable:             enable,
				Template:           req.Template,
				Subject:            req.Subject,
				UseDefaultTemplate: req.UseDefaultTemplate,
				UseDefaultSubject:  req.UseDefaultSubject,
				CreateUser:         userID,
				CreateTime:         now,
				UpdateUser:         userID,
				UpdateTime:         now,
			}
			if err := tasks.Create(ctx, task); err != nil {
				return err
			}
			result.CreatedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Receivers = valid
	if result.Partial() {
		logger.WithFields(logrus.Fields{
			"project_id": req.ProjectID,
			"task_type":  req.TaskType,
			"event":      req.Event,
			"unresolved": result.Unresolved,
		}).Warn("message task saved with unresolved receivers")
	}
	return result, nil
}

// resolveReceivers 关联人占位符直接有效，其余必须是未删除的项目成员
func (s *MessageTaskService) resolveReceivers(ctx context.Context, projects *repository.ProjectRepository, projectID string, receiverIDs []string) (valid, unresolved []string, err error) {
	userIDs := make([]string, 0, len(receiverIDs))
	for _, id := range receiverIDs {
		if !model.IsRelatedReceiver(id) {
			userIDs = append(userIDs, id)
		}
	}

	users, err := projects.ListMemberUsers(ctx, projectID, userIDs)
	if err != nil {
		return nil, nil, err
	}
	members := make(map[string]struct{}, len(users))
	for _, u := range users {
		members[u.ID] = struct{}{}
	}

	valid = make([]string, 0, len(receiverIDs))
	unresolved = []string{}
	for _, id := range receiverIDs {
		if _, ok := members[id]; ok || model.IsRelatedReceiver(id) {
			valid = append(valid, id)
			continue
		}
		unresolved = append(unresolved, id)
	}
	return valid, unresolved, nil
}

// resolveRobot 未指定时使用项目默认机器人，指定时必须属于该项目
func (s *MessageTaskService) resolveRobot(ctx context.Context, projects *repository.ProjectRepository, projectID, robotID string) (*model.ProjectRobot, error) {
	var (
		robot *model.ProjectRobot
		err   error
	)
	if robotID == "" {
		robot, err = projects.DefaultRobot(ctx, projectID)
	} else {
		robot, err = projects.GetRobot(ctx, projectID, robotID)
	}
	if err != nil {
		return nil, err
	}
	if robot == nil {
		return nil, errcode.ErrRobotNotExist
	}
	return robot, nil
}

type messageTaskGroupKey struct {
	taskType string
	event    string
	robotID  string
}

// Get 查询项目消息配置，按任务类型、事件、机器人聚合接收人
func (s *MessageTaskService) Get(ctx context.Context, projectID string) ([]model.MessageTaskDTO, error) {
	projects := repository.NewProjectRepository(s.db)

	project, err := projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errcode.ErrProjectNotExist
	}

	tasks, err := repository.NewMessageTaskRepository(s.db).ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return []model.MessageTaskDTO{}, nil
	}

	robotIDs := make([]string, 0)
	userIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		robotIDs = append(robotIDs, t.ProjectRobotID)
		if !model.IsRelatedReceiver(t.Receiver) {
			userIDs = append(userIDs, t.Receiver)
		}
	}

	robots, err := projects.ListRobots(ctx, utils.Distinct(robotIDs))
	if err != nil {
		return nil, err
	}
	robotMap := make(map[string]model.ProjectRobot, len(robots))
	for _, r := range robots {
		robotMap[r.ID] = r
	}

	users, err := projects.ListUsers(ctx, utils.Distinct(userIDs))
	if err != nil {
		return nil, err
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	result := make([]model.MessageTaskDTO, 0)
	index := make(map[messageTaskGroupKey]int)
	for _, t := range tasks {
		key := messageTaskGroupKey{taskType: t.TaskType, event: t.Event, robotID: t.ProjectRobotID}
		i, ok := index[key]
		if !ok {
			robot := robotMap[t.ProjectRobotID]
			result = append(result, model.MessageTaskDTO{
				ProjectID:      t.ProjectID,
				TaskType:       t.TaskType,
				Event:          t.Event,
				ProjectRobotID: t.ProjectRobotID,
				RobotName:      robot.Name,
				Platform:       string(robot.Platform),
				Enable:         t.Enable,
				Template:       t.Template,
				Receivers:      []model.ReceiverDTO{},
			})
			i = len(result) - 1
			index[key] = i
		}

		name, ok := userNames[t.Receiver]
		if !ok {
			name = t.Receiver
		}
		result[i].Receivers = append(result[i].Receivers, model.ReceiverDTO{ID: t.Receiver, Name: name})
	}
	return result, nil
}
