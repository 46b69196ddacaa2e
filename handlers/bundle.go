package handlers

// HandlerBundle groups the handler sets so route registration takes a
// single dependency.
type HandlerBundle struct {
	Class    *ClassHandler
	Student  *StudentHandler
	Schedule *ScheduleHandler
}
