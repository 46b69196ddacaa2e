package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. They mirror the Mongo implementations' contract,
// including mongo.ErrNoDocuments as the not-found sentinel.

type fakeClassRepo struct {
	classes map[string]models.Class
}

func newFakeClassRepo(ids ...string) *fakeClassRepo {
	r := &fakeClassRepo{classes: map[string]models.Class{}}
	for _, id := range ids {
		r.classes[id] = models.Class{ID: id, Name: "class " + id}
	}
	return r
}

func (r *fakeClassRepo) Create(ctx context.Context, class *models.Class) error {
	r.classes[class.ID] = *class
	return nil
}

func (r *fakeClassRepo) GetByID(ctx context.Context, id string) (*models.Class, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (r *fakeClassRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, ok := r.classes[id]
	return ok, nil
}

func (r *fakeClassRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := r.classes[id]; !ok {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *fakeClassRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.classes[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.classes, id)
	return nil
}

func (r *fakeClassRepo) List(ctx context.Context, page, limit int) ([]models.Class, int64, error) {
	var out []models.Class
	for _, c := range r.classes {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeClassRepo) EnsureIndexes() error { return nil }

type fakeScheduleRepo struct {
	schedules []models.Schedule
	nextID    int
	// set when cascade behaviour is under test
	exceptions *fakeExceptionRepo
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{}
}

func (r *fakeScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	r.nextID++
	schedule.ID = fmt.Sprintf("sched-%d", r.nextID)
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = schedule.CreatedAt
	r.schedules = append(r.schedules, *schedule)
	return nil
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	for _, s := range r.schedules {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeScheduleRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	for i, s := range r.schedules {
		if s.ID != id {
			continue
		}
		if v, ok := fields["dayOfWeek"].(int); ok {
			s.DayOfWeek = v
		}
		if v, ok := fields["startTime"].(string); ok {
			s.StartTime = v
		}
		if v, ok := fields["endTime"].(string); ok {
			s.EndTime = v
		}
		s.UpdatedAt = time.Now()
		r.schedules[i] = s
		return nil
	}
	return mongo.ErrNoDocuments
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	for i, s := range r.schedules {
		if s.ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			if r.exceptions != nil {
				r.exceptions.deleteBySchedule(id)
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeScheduleRepo) FindByClassAndDay(ctx context.Context, classID string, dayOfWeek int, excludeID string) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, s := range r.schedules {
		if s.ClassID != classID || s.DayOfWeek != dayOfWeek {
			continue
		}
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeScheduleRepo) GetByClass(ctx context.Context, classID string) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, s := range r.schedules {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) ListByClass(ctx context.Context, classID string, q models.ListSchedulesQuery) ([]models.Schedule, int64, error) {
	var matched []models.Schedule
	for _, s := range r.schedules {
		if s.ClassID != classID {
			continue
		}
		if q.DayOfWeek != nil && s.DayOfWeek != *q.DayOfWeek {
			continue
		}
		matched = append(matched, s)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].DayOfWeek != matched[j].DayOfWeek {
			return matched[i].DayOfWeek < matched[j].DayOfWeek
		}
		return matched[i].StartTime < matched[j].StartTime
	})

	total := int64(len(matched))
	start := (q.Page - 1) * q.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeScheduleRepo) EnsureIndexes() error { return nil }

type fakeExceptionRepo struct {
	exceptions []models.ScheduleException
	nextID     int
}

func newFakeExceptionRepo() *fakeExceptionRepo {
	return &fakeExceptionRepo{}
}

func (r *fakeExceptionRepo) Create(ctx context.Context, exception *models.ScheduleException) error {
	r.nextID++
	exception.ID = fmt.Sprintf("exc-%d", r.nextID)
	exception.CreatedAt = time.Now()
	exception.UpdatedAt = exception.CreatedAt
	r.exceptions = append(r.exceptions, *exception)
	return nil
}

func (r *fakeExceptionRepo) GetByID(ctx context.Context, id string) (*models.ScheduleException, error) {
	for _, e := range r.exceptions {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeExceptionRepo) FindByScheduleAndDate(ctx context.Context, scheduleID, date, excludeID string) (*models.ScheduleException, error) {
	for _, e := range r.exceptions {
		if e.ScheduleID != scheduleID || e.Date != date {
			continue
		}
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		out := e
		return &out, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeExceptionRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	for i, e := range r.exceptions {
		if e.ID != id {
			continue
		}
		if v, ok := fields["date"].(string); ok {
			e.Date = v
		}
		if v, ok := fields["startTime"].(string); ok {
			e.StartTime = v
		}
		if v, ok := fields["endTime"].(string); ok {
			e.EndTime = v
		}
		if v, ok := fields["cancelled"].(bool); ok {
			e.Cancelled = v
		}
		e.UpdatedAt = time.Now()
		r.exceptions[i] = e
		return nil
	}
	return mongo.ErrNoDocuments
}

func (r *fakeExceptionRepo) Delete(ctx context.Context, id string) error {
	for i, e := range r.exceptions {
		if e.ID == id {
			r.exceptions = append(r.exceptions[:i], r.exceptions[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeExceptionRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]models.ScheduleException, error) {
	var out []models.ScheduleException
	for _, e := range r.exceptions {
		if e.ScheduleID == scheduleID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeExceptionRepo) ListByScheduleIDs(ctx context.Context, scheduleIDs []string) ([]models.ScheduleException, error) {
	ids := map[string]bool{}
	for _, id := range scheduleIDs {
		ids[id] = true
	}
	var out []models.ScheduleException
	for _, e := range r.exceptions {
		if ids[e.ScheduleID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExceptionRepo) deleteBySchedule(scheduleID string) {
	kept := r.exceptions[:0]
	for _, e := range r.exceptions {
		if e.ScheduleID != scheduleID {
			kept = append(kept, e)
		}
	}
	r.exceptions = kept
}

func (r *fakeExceptionRepo) EnsureIndexes() error { return nil }

// newTestService wires a service over fresh fakes with one known class.
func newTestService(classIDs ...string) (*DefaultScheduleService, *fakeScheduleRepo, *fakeExceptionRepo) {
	if len(classIDs) == 0 {
		classIDs = []string{"class-1"}
	}
	classes := newFakeClassRepo(classIDs...)
	schedules := newFakeScheduleRepo()
	exceptions := newFakeExceptionRepo()
	schedules.exceptions = exceptions

	svc := &DefaultScheduleService{
		Classes:    classes,
		Repo:       schedules,
		Exceptions: exceptions,
	}
	return svc, schedules, exceptions
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func mustCreate(svc *DefaultScheduleService, classID string, day int, start, end string) *models.Schedule {
	created, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		ClassID:   classID,
		DayOfWeek: intPtr(day),
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		panic(fmt.Sprintf("fixture schedule rejected: %v", err))
	}
	return created
}
