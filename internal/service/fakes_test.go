package service

import (
	"context"
	"sort"
	"time"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
)

// In-memory fakes enforcing the same sentinel contracts as the
// postgres repositories.

type fakeUserRepo struct {
	seq   int64
	users map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	f.seq++
	u.ID = f.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return errs.ErrNotFound
	}
	for _, ex := range f.users {
		if ex.ID != u.ID && ex.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeBlogRepo struct {
	seq   int64
	posts map[int64]*models.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[int64]*models.BlogPost{}}
}

func (f *fakeBlogRepo) Create(_ context.Context, p *models.BlogPost) error {
	for _, ex := range f.posts {
		if ex.Slug == p.Slug {
			return errs.ErrAlreadyExists
		}
	}
	f.seq++
	p.ID = f.seq
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id int64) (*models.BlogPost, error) {
	if p, ok := f.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeBlogRepo) sorted() []models.BlogPost {
	var out []models.BlogPost
	for _, p := range f.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeBlogRepo) ListPublished(_ context.Context, limit, offset int) ([]models.BlogPost, int, error) {
	var pub []models.BlogPost
	for _, p := range f.sorted() {
		if p.Status == models.StatusPublished {
			pub = append(pub, p)
		}
	}
	total := len(pub)
	if offset > len(pub) {
		offset = len(pub)
	}
	pub = pub[offset:]
	if limit < len(pub) {
		pub = pub[:limit]
	}
	return pub, total, nil
}

func (f *fakeBlogRepo) ListAll(_ context.Context) ([]models.BlogPost, error) {
	return f.sorted(), nil
}

func (f *fakeBlogRepo) ListByAuthor(_ context.Context, authorID int64) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range f.sorted() {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, p *models.BlogPost) error {
	if _, ok := f.posts[p.ID]; !ok {
		return errs.ErrNotFound
	}
	for _, ex := range f.posts {
		if ex.ID != p.ID && ex.Slug == p.Slug {
			return errs.ErrAlreadyExists
		}
	}
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeGalleryRepo struct {
	seq   int64
	items map[int64]*models.GalleryItem
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{items: map[int64]*models.GalleryItem{}}
}

func (f *fakeGalleryRepo) Create(_ context.Context, it *models.GalleryItem) error {
	f.seq++
	it.ID = f.seq
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeGalleryRepo) GetByID(_ context.Context, id int64) (*models.GalleryItem, error) {
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeGalleryRepo) sorted() []models.GalleryItem {
	var out []models.GalleryItem
	for _, it := range f.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeGalleryRepo) List(_ context.Context, flt repository.GalleryFilter) ([]models.GalleryItem, int, error) {
	var out []models.GalleryItem
	for _, it := range f.sorted() {
		if flt.Category != "" && it.Category != flt.Category {
			continue
		}
		if flt.FeaturedOnly && !it.Featured {
			continue
		}
		out = append(out, it)
	}
	total := len(out)
	if flt.Offset > len(out) {
		flt.Offset = len(out)
	}
	out = out[flt.Offset:]
	if flt.Limit > 0 && flt.Limit < len(out) {
		out = out[:flt.Limit]
	}
	return out, total, nil
}

func (f *fakeGalleryRepo) ListFeatured(_ context.Context, limit int) ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	for _, it := range f.sorted() {
		if it.Featured {
			out = append(out, it)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeGalleryRepo) CategoryCounts(_ context.Context) ([]models.CategoryCount, error) {
	counts := map[models.GalleryCategory]int{}
	for _, it := range f.items {
		counts[it.Category]++
	}
	var out []models.CategoryCount
	for c, n := range counts {
		out = append(out, models.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (f *fakeGalleryRepo) Update(_ context.Context, it *models.GalleryItem) error {
	if _, ok := f.items[it.ID]; !ok {
		return errs.ErrNotFound
	}
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeGalleryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeContactRepo struct {
	seq      int64
	contacts map[int64]*models.ContactSubmission
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[int64]*models.ContactSubmission{}}
}

func (f *fakeContactRepo) Create(_ context.Context, c *models.ContactSubmission) error {
	f.seq++
	c.ID = f.seq
	c.Status = models.ContactNew
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.contacts[c.ID] = &cp
	return nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id int64) (*models.ContactSubmission, error) {
	if c, ok := f.contacts[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeContactRepo) List(_ context.Context, status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, int, error) {
	var out []models.ContactSubmission
	for _, c := range f.contacts {
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeContactRepo) UpdateStatus(_ context.Context, id int64, status models.ContactStatus, notes *string) (*models.ContactSubmission, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c.Status = status
	if notes != nil {
		c.AdminNotes = *notes
	}
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (f *fakeContactRepo) Stats(_ context.Context) (*models.ContactStats, error) {
	s := &models.ContactStats{}
	cutoff := time.Now().AddDate(0, 0, -7)
	for _, c := range f.contacts {
		s.Total++
		switch c.Status {
		case models.ContactNew:
			s.New++
		case models.ContactContacted:
			s.Contacted++
		case models.ContactResolved:
			s.Resolved++
		}
		if c.CreatedAt.After(cutoff) {
			s.Recent++
		}
	}
	return s, nil
}

// fakeImageStore records uploads and deletes; fail makes Upload error.
type fakeImageStore struct {
	fail    bool
	uploads int
	deleted []string
	delErr  error
}

func (f *fakeImageStore) Upload(_ context.Context, _ []byte, _ string) (models.ImageRef, error) {
	if f.fail {
		return models.ImageRef{}, context.DeadlineExceeded
	}
	f.uploads++
	return models.ImageRef{Key: "gallery/test-key", URL: "https://img.example.org/gallery/test-key"}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}
