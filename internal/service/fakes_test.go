package service

import (
	"context"
	"strings"
	"time"

	"estatehub/internal/gateway"
	"estatehub/internal/model"
	"estatehub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes implementing the repository interfaces. They return copies
// the way a store decode would, so services never share memory with them.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	out := []*model.User{}
	for _, u := range f.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	c := *user
	f.users[user.Email] = &c
	return user, nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, email string, at time.Time) (int64, error) {
	u, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	u.LastLogIn = at
	return 1, nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, email, role string) (int64, error) {
	u, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	u.Role = role
	return 1, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	u, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["photoURL"].(string); ok {
		u.PhotoURL = v
	}
	return 1, nil
}

func (f *fakeUserRepo) MarkFraud(ctx context.Context, email string) (int64, error) {
	u, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	u.Status = model.UserStatusFraud
	return 1, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, email string) (int64, error) {
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	delete(f.users, email)
	return 1, nil
}

type fakePropertyRepo struct {
	props     map[primitive.ObjectID]*model.Property
	deleteErr error
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{props: map[primitive.ObjectID]*model.Property{}}
}

func (f *fakePropertyRepo) Search(ctx context.Context, q repository.PropertySearch) ([]*model.Property, error) {
	out := []*model.Property{}
	for _, p := range f.props {
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(q.Search)) {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakePropertyRepo) FindAdvertised(ctx context.Context) ([]*model.Property, error) {
	out := []*model.Property{}
	for _, p := range f.props {
		if p.IsAdvertised {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Property, error) {
	p, ok := f.props[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakePropertyRepo) FindByAgent(ctx context.Context, email string) ([]*model.Property, error) {
	out := []*model.Property{}
	for _, p := range f.props {
		if p.AgentEmail == email {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) Insert(ctx context.Context, p *model.Property) (*model.Property, error) {
	p.ID = primitive.NewObjectID()
	c := *p
	f.props[p.ID] = &c
	return p, nil
}

func (f *fakePropertyRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	p, ok := f.props[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["title"].(string); ok {
		p.Title = v
	}
	if v, ok := fields["location"].(string); ok {
		p.Location = v
	}
	if v, ok := fields["minPrice"].(float64); ok {
		p.MinPrice = model.Price(v)
	}
	if v, ok := fields["maxPrice"].(float64); ok {
		p.MaxPrice = model.Price(v)
	}
	return 1, nil
}

func (f *fakePropertyRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	p, ok := f.props[id]
	if !ok {
		return 0, nil
	}
	p.Status = status
	return 1, nil
}

func (f *fakePropertyRepo) Advertise(ctx context.Context, id primitive.ObjectID, at time.Time) (int64, error) {
	p, ok := f.props[id]
	if !ok {
		return 0, nil
	}
	p.IsAdvertised = true
	p.AdvertisedAt = at
	return 1, nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.props[id]; !ok {
		return 0, nil
	}
	delete(f.props, id)
	return 1, nil
}

func (f *fakePropertyRepo) DeleteByAgent(ctx context.Context, email string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var n int64
	for id, p := range f.props {
		if p.AgentEmail == email {
			delete(f.props, id)
			n++
		}
	}
	return n, nil
}

func (f *fakePropertyRepo) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.props[id]
	return ok, nil
}

type fakeOfferRepo struct {
	offers      map[primitive.ObjectID]*model.Offer
	siblingsErr error
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[primitive.ObjectID]*model.Offer{}}
}

func (f *fakeOfferRepo) Find(ctx context.Context, agentEmail, buyerEmail string) ([]*model.Offer, error) {
	out := []*model.Offer{}
	for _, o := range f.offers {
		if agentEmail != "" && o.AgentEmail != agentEmail {
			continue
		}
		if buyerEmail != "" && o.BuyerEmail != buyerEmail {
			continue
		}
		c := *o
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeOfferRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

func (f *fakeOfferRepo) Insert(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	offer.ID = primitive.NewObjectID()
	c := *offer
	f.offers[offer.ID] = &c
	return offer, nil
}

func (f *fakeOfferRepo) AcceptIfPending(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error) {
	o, ok := f.offers[id]
	if !ok || o.Status != model.OfferStatusPending {
		return false, nil
	}
	o.Status = model.OfferStatusAccepted
	o.DecisionAt = at
	return true, nil
}

func (f *fakeOfferRepo) RejectPendingSiblings(ctx context.Context, propertyID string, except primitive.ObjectID) (int64, error) {
	if f.siblingsErr != nil {
		return 0, f.siblingsErr
	}
	var n int64
	for id, o := range f.offers {
		if id == except || o.PropertyID != propertyID || o.Status != model.OfferStatusPending {
			continue
		}
		o.Status = model.OfferStatusRejected
		n++
	}
	return n, nil
}

func (f *fakeOfferRepo) RejectIfNotBought(ctx context.Context, id primitive.ObjectID) (bool, error) {
	o, ok := f.offers[id]
	if !ok || o.Status == model.OfferStatusBought {
		return false, nil
	}
	o.Status = model.OfferStatusRejected
	return true, nil
}

func (f *fakeOfferRepo) MarkBoughtIfAccepted(ctx context.Context, id primitive.ObjectID, transactionID string, paidAt time.Time) (bool, error) {
	o, ok := f.offers[id]
	if !ok || o.Status != model.OfferStatusAccepted {
		return false, nil
	}
	o.Status = model.OfferStatusBought
	o.TransactionID = transactionID
	o.PaidAt = paidAt
	return true, nil
}

func (f *fakeOfferRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.offers[id]; !ok {
		return 0, nil
	}
	delete(f.offers, id)
	return 1, nil
}

// get returns the stored document for assertions.
func (f *fakeOfferRepo) get(id primitive.ObjectID) *model.Offer {
	return f.offers[id]
}

type fakeWishlistRepo struct {
	entries map[primitive.ObjectID]*model.WishlistEntry
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: map[primitive.ObjectID]*model.WishlistEntry{}}
}

func (f *fakeWishlistRepo) FindByUser(ctx context.Context, email string) ([]*model.WishlistEntry, error) {
	out := []*model.WishlistEntry{}
	for _, e := range f.entries {
		if e.UserEmail == email {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.WishlistEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (f *fakeWishlistRepo) ExistsForUser(ctx context.Context, propertyID, email string) (bool, error) {
	for _, e := range f.entries {
		if e.PropertyID == propertyID && e.UserEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) Insert(ctx context.Context, entry *model.WishlistEntry) (*model.WishlistEntry, error) {
	entry.ID = primitive.NewObjectID()
	c := *entry
	f.entries[entry.ID] = &c
	return entry, nil
}

func (f *fakeWishlistRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.entries[id]; !ok {
		return 0, nil
	}
	delete(f.entries, id)
	return 1, nil
}

type fakeReviewRepo struct {
	reviews map[primitive.ObjectID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[primitive.ObjectID]*model.Review{}}
}

func (f *fakeReviewRepo) Find(ctx context.Context, propertyID string) ([]*model.Review, error) {
	out := []*model.Review{}
	for _, r := range f.reviews {
		if propertyID != "" && r.PropertyID != propertyID {
			continue
		}
		c := *r
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByReviewer(ctx context.Context, email string) ([]*model.Review, error) {
	out := []*model.Review{}
	for _, r := range f.reviews {
		if r.ReviewerEmail == email {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Latest(ctx context.Context, limit int64) ([]*model.Review, error) {
	out, _ := f.Find(ctx, "")
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *model.Review) (*model.Review, error) {
	review.ID = primitive.NewObjectID()
	c := *review
	f.reviews[review.ID] = &c
	return review, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.reviews[id]; !ok {
		return 0, nil
	}
	delete(f.reviews, id)
	return 1, nil
}

type fakePaymentRepo struct {
	payments  map[string]*model.Payment
	upsertErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*model.Payment{}}
}

func (f *fakePaymentRepo) Find(ctx context.Context, filter repository.PaymentFilter) ([]*model.Payment, error) {
	out := []*model.Payment{}
	for _, p := range f.payments {
		if filter.BuyerEmail != "" && p.BuyerEmail != filter.BuyerEmail {
			continue
		}
		if filter.PropertyID != "" && p.PropertyID != filter.PropertyID {
			continue
		}
		if filter.OfferID != "" && p.OfferID != filter.OfferID {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakePaymentRepo) FindByTransaction(ctx context.Context, transactionID string) (*model.Payment, error) {
	p, ok := f.payments[transactionID]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakePaymentRepo) UpsertByTransaction(ctx context.Context, payment *model.Payment) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if _, ok := f.payments[payment.TransactionID]; ok {
		return nil
	}
	c := *payment
	c.ID = primitive.NewObjectID()
	f.payments[payment.TransactionID] = &c
	return nil
}

type fakeGateway struct {
	requests []gateway.IntentRequest
	secret   string
}

func (f *fakeGateway) CreateIntent(ctx context.Context, req gateway.IntentRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.secret == "" {
		return "cs_test_secret", nil
	}
	return f.secret, nil
}
