package sweet

import (
	"github.com/deppfellow/sweets/internal/validation"
)

// Payload is the writable part of a sweet as sent by clients.
//
// Both fields are pointers so that "absent" and "null" can be told apart
// from a legitimate zero calorie count.
type Payload struct {
	Title    *string `json:"title"`
	Calories *int    `json:"calories"`
}

// Fields returns the validated values. Call only after Validate succeeded.
func (p Payload) Fields() (string, int) {
	return *p.Title, *p.Calories
}

// ListSweetsRequest is bound from GET /sweets/. It carries nothing.
type ListSweetsRequest struct{}

func (r *ListSweetsRequest) Validate() error {
	return nil
}

// CreateSweetRequest is bound from POST /sweets/.
type CreateSweetRequest struct {
	Payload
}

func (r *CreateSweetRequest) Validate() error {
	return validation.CheckSweet(r.Title, r.Calories, TitleMaxLength, CaloriesMax)
}

// GetSweetRequest is bound from GET /sweets/:id/.
type GetSweetRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetSweetRequest) Validate() error {
	return nil
}

// DeleteSweetRequest is bound from DELETE /sweets/:id/.
type DeleteSweetRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteSweetRequest) Validate() error {
	return nil
}

// UpdateSweetRequest is bound from PUT /sweets/:id/. The payload is
// validated before the id is ever looked up.
type UpdateSweetRequest struct {
	ID int64 `param:"id" json:"-"`
	Payload
}

func (r *UpdateSweetRequest) Validate() error {
	return validation.CheckSweet(r.Title, r.Calories, TitleMaxLength, CaloriesMax)
}
