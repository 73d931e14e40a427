package i18n

var zhCN = map[string]string{
	"success":        "操作成功",
	"param_error":    "参数错误",
	"unauthorized":   "未授权访问",

	"auth.token_missing":   "缺少认证信息",
	"auth.token_malformed": "认证格式错误",
	"auth.token_invalid":   "无效的认证信息",

	"internal_error": "服务器内部错误",
	"rate_limited":   "请求过于频繁，请稍后再试",

	"user_view.all_data":     "全部数据",
	"user_view.my_follow":    "我关注的",
	"user_view.my_create":    "我创建的",
	"user_view.my_todo":      "我的待办",
	"user_view.exist":        "视图名称已存在",
	"user_view.type_invalid": "视图类型不合法",
	"check_owner_case":       "当前用户没有权限操作此数据",

	"project_is_not_exist":          "项目不存在",
	"robot_is_null":                 "机器人不存在",
	"user.not.exist":                "用户不存在",
	"message_task.receiver_removed": "通知人 %s 已被移除或不是项目成员",
	"operation_log.not_exist":       "日志不存在",
}

var enUS = map[string]string{
	"success":        "Success",
	"param_error":    "Invalid parameters",
	"unauthorized":   "Unauthorized",

	"auth.token_missing":   "Missing credentials",
	"auth.token_malformed": "Malformed authorization header",
	"auth.token_invalid":   "Invalid credentials",

	"internal_error": "Internal server error",
	"rate_limited":   "Too many requests, please try again later",

	"user_view.all_data":     "All data",
	"user_view.my_follow":    "My follows",
	"user_view.my_create":    "Created by me",
	"user_view.my_todo":      "My to-do",
	"user_view.exist":        "The view name already exists",
	"user_view.type_invalid": "Invalid view type",
	"check_owner_case":       "The current user has no permission to operate this data",

	"project_is_not_exist":          "Project does not exist",
	"robot_is_null":                 "Robot does not exist",
	"user.not.exist":                "User does not exist",
	"message_task.receiver_removed": "Receiver %s has been removed or is not a project member",
	"operation_log.not_exist":       "Log does not exist",
}
