package models

// Identity is the base shape shared by both kinds of participants. The
// backing credential store keeps a single role-tagged user collection; this
// core only ever reads it and surfaces the two variants as distinct types.
type Identity struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

type Doctor struct {
	Identity `bson:",inline"`
}

type Patient struct {
	Identity `bson:",inline"`
}
