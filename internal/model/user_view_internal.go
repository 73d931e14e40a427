package model

import "strings"

// UserViewType 视图类型
type UserViewType string

const (
	ViewTypeFunctionalCase UserViewType = "FUNCTIONAL_CASE"
	ViewTypeBug            UserViewType = "BUG"
	ViewTypeAPIDefinition  UserViewType = "API_DEFINITION"
	ViewTypeAPICase        UserViewType = "API_CASE"
	ViewTypeAPIScenario    UserViewType = "API_SCENARIO"
	ViewTypeTestPlan       UserViewType = "TEST_PLAN"
)

// InternalUserView 系统内置视图，不落库
type InternalUserView string

const (
	InternalViewAllData  InternalUserView = "ALL_DATA"
	InternalViewMyFollow InternalUserView = "MY_FOLLOW"
	InternalViewMyCreate InternalUserView = "MY_CREATE"
	InternalViewMyTodo   InternalUserView = "MY_TODO"
)

var internalViewPos = map[InternalUserView]int64{
	InternalViewAllData:  1,
	InternalViewMyFollow: 2,
	InternalViewMyCreate: 3,
	InternalViewMyTodo:   4,
}

var userViewTypes = map[UserViewType][]InternalUserView{
	ViewTypeFunctionalCase: {InternalViewAllData, InternalViewMyFollow, InternalViewMyCreate},
	ViewTypeBug:            {InternalViewAllData, InternalViewMyFollow, InternalViewMyCreate, InternalViewMyTodo},
	ViewTypeAPIDefinition:  {InternalViewAllData, InternalViewMyFollow, InternalViewMyCreate},
	ViewTypeAPICase:        {InternalViewAllData, InternalViewMyFollow, InternalViewMyCreate},
	ViewTypeAPIScenario:    {InternalViewAllData, InternalViewMyFollow, InternalViewMyCreate},
	ViewTypeTestPlan:       {InternalViewAllData, InternalViewMyFollow, InternalViewMyCreate, InternalViewMyTodo},
}

// ParseUserViewType 校验视图类型
func ParseUserViewType(s string) (UserViewType, bool) {
	t := UserViewType(s)
	_, ok := userViewTypes[t]
	return t, ok
}

// InternalViews 该视图类型下的内置视图
func (t UserViewType) InternalViews() []InternalUserView {
	return userViewTypes[t]
}

// Name 内置视图的保留名称，同时作为其 id 和翻译键后缀
func (v InternalUserView) Name() string {
	return strings.ToLower(string(v))
}

// Pos 内置视图的固定排序
func (v InternalUserView) Pos() int64 {
	return internalViewPos[v]
}

// TranslationKey 翻译键
func (v InternalUserView) TranslationKey() string {
	return "user_view." + v.Name()
}

// FindInternalUserView 按 id 查找内置视图，忽略大小写
func FindInternalUserView(id string) (InternalUserView, bool) {
	for v := range internalViewPos {
		if strings.EqualFold(id, string(v)) {
			return v, true
		}
	}
	return "", false
}
