package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
	"promptly/internal/repositories"
)

// In-memory fakes standing in for the gorm repositories. They reproduce the
// repository contracts (not-found is nil, nil; Moderate re-guards inside its
// "transaction") so the services can be exercised without a database.

type fakeUserRepo struct {
	users map[string]*db_models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

type fakeSubmissionRepo struct {
	submissions map[string]*db_models.Submission
	prompts     []*db_models.Prompt // derived rows created by Moderate
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: map[string]*db_models.Submission{}}
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submission *db_models.Submission) (uuid.UUID, error) {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	f.submissions[submission.ID.String()] = submission
	return submission.ID, nil
}

func (f *fakeSubmissionRepo) FindByID(ctx context.Context, id string) (*db_models.Submission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSubmissionRepo) ListByStatus(ctx context.Context, status db_models.SubmissionStatus, page, pageSize int) ([]db_models.Submission, int64, error) {
	var matched []db_models.Submission
	for _, s := range f.submissions {
		if s.Status == status {
			matched = append(matched, *s)
		}
	}
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []db_models.Submission{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeSubmissionRepo) Moderate(ctx context.Context, id string, decision db_models.SubmissionStatus, moderator string, derived *db_models.Prompt) (*db_models.Submission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if s.Status.Terminal() {
		return nil, repositories.ErrAlreadyDecided
	}
	now := time.Now().Unix()
	s.Status = decision
	s.ModeratedBy = moderator
	s.ModeratedAt = &now
	if decision == db_models.SubmissionStatusApproved && derived != nil {
		f.prompts = append(f.prompts, derived)
	}
	copied := *s
	return &copied, nil
}

type fakeServiceRepo struct {
	services map[string]*db_models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*db_models.Service{}}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *db_models.Service) (uuid.UUID, error) {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	f.services[service.ID.String()] = service
	return service.ID, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, service *db_models.Service) error {
	if _, ok := f.services[service.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.services[service.ID.String()] = service
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.services, id.String())
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id string) (*db_models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeServiceRepo) ListActive(ctx context.Context) ([]db_models.Service, error) {
	var active []db_models.Service
	for _, s := range f.services {
		if s.IsActive {
			active = append(active, *s)
		}
	}
	return active, nil
}

type fakeRequestRepo struct {
	requests map[string]*db_models.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*db_models.ServiceRequest{}}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *db_models.ServiceRequest) (uuid.UUID, error) {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	f.requests[request.ID.String()] = request
	return request.ID, nil
}

func (f *fakeRequestRepo) FindByID(ctx context.Context, id string) (*db_models.ServiceRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRequestRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ServiceRequest, error) {
	var owned []db_models.ServiceRequest
	for _, r := range f.requests {
		if r.UserID == userID {
			owned = append(owned, *r)
		}
	}
	return owned, nil
}

func (f *fakeRequestRepo) ListAll(ctx context.Context, status db_models.RequestStatus) ([]db_models.ServiceRequest, error) {
	var all []db_models.ServiceRequest
	for _, r := range f.requests {
		if status == "" || r.Status == status {
			all = append(all, *r)
		}
	}
	return all, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, from, to db_models.RequestStatus) error {
	r, ok := f.requests[id]
	if !ok || r.Status != from {
		return repositories.ErrStatusConflict
	}
	r.Status = to
	return nil
}

func (f *fakeRequestRepo) UpdatePayment(ctx context.Context, id string, status db_models.PaymentStatus) error {
	r, ok := f.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.PaymentStatus = status
	return nil
}

type fakeOutreachRepo struct {
	messages    []*db_models.ContactMessage
	subscribers map[string]*db_models.NewsletterSubscriber
}

func newFakeOutreachRepo() *fakeOutreachRepo {
	return &fakeOutreachRepo{subscribers: map[string]*db_models.NewsletterSubscriber{}}
}

func (f *fakeOutreachRepo) CreateContactMessage(ctx context.Context, message *db_models.ContactMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeOutreachRepo) FindSubscriberByEmail(ctx context.Context, email string) (*db_models.NewsletterSubscriber, error) {
	s, ok := f.subscribers[email]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeOutreachRepo) CreateSubscriber(ctx context.Context, subscriber *db_models.NewsletterSubscriber) error {
	if _, ok := f.subscribers[subscriber.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.subscribers[subscriber.Email] = subscriber
	return nil
}

type fakeBlogRepo struct {
	posts map[string]*db_models.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[string]*db_models.BlogPost{}}
}

func (f *fakeBlogRepo) slugTaken(slug string, exceptID uuid.UUID) bool {
	for _, p := range f.posts {
		if p.Slug == slug && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (f *fakeBlogRepo) Create(ctx context.Context, post *db_models.BlogPost) (uuid.UUID, error) {
	if f.slugTaken(post.Slug, uuid.Nil) {
		return uuid.Nil, gorm.ErrDuplicatedKey
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	f.posts[post.ID.String()] = post
	return post.ID, nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, post *db_models.BlogPost) error {
	if _, ok := f.posts[post.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	if f.slugTaken(post.Slug, post.ID) {
		return gorm.ErrDuplicatedKey
	}
	f.posts[post.ID.String()] = post
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.posts, id.String())
	return nil
}

func (f *fakeBlogRepo) FindByID(ctx context.Context, id string) (*db_models.BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeBlogRepo) FindPublishedBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.Status == db_models.PostStatusPublished {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) ListPublished(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, int64, error) {
	var published []db_models.BlogPost
	for _, p := range f.posts {
		if p.Status == db_models.PostStatusPublished {
			published = append(published, *p)
		}
	}
	total := int64(len(published))
	start := (page - 1) * pageSize
	if start >= len(published) {
		return []db_models.BlogPost{}, total, nil
	}
	end := start + pageSize
	if end > len(published) {
		end = len(published)
	}
	return published[start:end], total, nil
}

func (f *fakeBlogRepo) ListAll(ctx context.Context) ([]db_models.BlogPost, error) {
	var all []db_models.BlogPost
	for _, p := range f.posts {
		all = append(all, *p)
	}
	return all, nil
}

// Compile-time checks that the fakes satisfy the repository contracts.
var (
	_ repositories.UserRepository           = (*fakeUserRepo)(nil)
	_ repositories.SubmissionRepository     = (*fakeSubmissionRepo)(nil)
	_ repositories.ServiceRepository        = (*fakeServiceRepo)(nil)
	_ repositories.ServiceRequestRepository = (*fakeRequestRepo)(nil)
	_ repositories.OutreachRepository       = (*fakeOutreachRepo)(nil)
	_ repositories.BlogRepository           = (*fakeBlogRepo)(nil)
)

// fakeMailService records sends on buffered channels because the outreach
// service mails from a goroutine.
type fakeMailService struct {
	welcomes      chan string
	notifications chan string
}

func newFakeMailService() *fakeMailService {
	return &fakeMailService{
		welcomes:      make(chan string, 8),
		notifications: make(chan string, 8),
	}
}

func (f *fakeMailService) SendNewsletterWelcome(to string) error {
	f.welcomes <- to
	return nil
}

func (f *fakeMailService) SendContactNotification(name, email, message string) error {
	f.notifications <- email
	return nil
}
