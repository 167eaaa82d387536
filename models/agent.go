package models

type Agent struct {
	ID          int      `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Title       string   `bson:"title" json:"title"`
	Phone       string   `bson:"phone" json:"phone"`
	Email       string   `bson:"email" json:"email"`
	Image       string   `bson:"image" json:"image"`
	Bio         string   `bson:"bio" json:"bio"`
	Listings    int      `bson:"listings" json:"listings"`
	Specialties []string `bson:"specialties" json:"specialties"`
}
