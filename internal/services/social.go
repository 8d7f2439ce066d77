package services

import "portfolio-backend-go/internal/models"

var platformIcons = map[string]string{
	"LinkedIn":  "💼",
	"GitHub":    "🐙",
	"Twitter":   "🐦",
	"Instagram": "📷",
	"Facebook":  "📘",
	"YouTube":   "🎥",
	"TikTok":    "🎵",
	"Discord":   "🎮",
}

// PlatformIcon maps a platform name to its display icon, falling back to a
// generic globe for unknown platforms.
func PlatformIcon(platform string) string {
	if icon, ok := platformIcons[platform]; ok {
		return icon
	}
	return "🌐"
}

// DeriveSocialIcon overwrites any client-supplied icon with the value
// derived from the platform name.
func DeriveSocialIcon(account *models.SocialAccount) {
	account.Icon = PlatformIcon(account.Platform)
}
