// server/internal/models/team_member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team member types.
const (
	MemberTypeFaculty = "Faculty"
	MemberTypeMentor  = "Mentor"
	MemberTypeLead    = "Lead"
	MemberTypeMember  = "Member"
)

// TeamMember represents faculty, mentors, leads and members listed on the
// team page. DisplayOrder defaults to 999 so unordered members sort last.
type TeamMember struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	Type         string             `bson:"type" json:"type"` // "Faculty", "Mentor", "Lead", "Member"
	Department   string             `bson:"department,omitempty" json:"department"`
	Email        string             `bson:"email,omitempty" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone"`
	LinkedIn     string             `bson:"linkedin,omitempty" json:"linkedin"`
	Photo        string             `bson:"photo,omitempty" json:"photo"`
	Bio          string             `bson:"bio,omitempty" json:"bio"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
