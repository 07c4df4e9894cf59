package apierrors

const (
	MsgUnauthorized = "unauthorized"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskForbidden      = "taskForbidden"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidNotificationPayload = "invalidNotificationPayload"
	MsgNotificationNotFound       = "notificationNotFound"
	MsgNotificationForbidden      = "notificationForbidden"
	MsgFailListNotifications      = "failListNotifications"
	MsgFailUpdateNotification     = "failUpdateNotification"

	MsgFailListUsers          = "failListUsers"
	MsgInvalidRegisterPayload = "invalidRegisterPayload"
	MsgEmailTaken             = "emailTaken"
	MsgFailRegister           = "failRegister"
	MsgInvalidCredentials     = "invalidCredentials"
	MsgFailLogin              = "failLogin"
)
