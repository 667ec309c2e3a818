package utils

import (
	"fmt"
	"strconv"
)

// DefaultAvatar is shown when an author has no profile picture.
const DefaultAvatar = "/public/cool_profile_pic.webp"

// AuthorLabel renders an author as "{cohort}기 {name}".
func AuthorLabel(cohort int, name string) string {
	return fmt.Sprintf("%d기 %s", cohort, name)
}

func AvatarURL(pic string) string {
	if pic == "" {
		return DefaultAvatar
	}
	return pic
}

func ProfileURL(uid int64) string {
	return "/profile/" + strconv.FormatInt(uid, 10)
}

// IsAuthor reports whether the viewer wrote the post. Emails must match
// exactly and an empty email never matches.
func IsAuthor(viewerEmail, authorEmail string) bool {
	return viewerEmail != "" && authorEmail != "" && viewerEmail == authorEmail
}
