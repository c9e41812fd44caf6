package notifications

import (
	"fmt"
	"strings"
)

// firstName extracts the first word of a full name for casual greetings.
func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fullName
	}
	return fields[0]
}

// WelcomeMessage is the text sent after a brand-new signup.
func WelcomeMessage(fullName, city string) string {
	return fmt.Sprintf(`🎉 Welcome to MarketPace, %s!

Your demo access is ready. You're now part of the movement to build stronger communities through local commerce.

🎁 EARLY SUPPORTER BENEFITS:
• Lifetime Pro features
• Special supporter badge
• First access when we launch in %s
• Priority driver opportunities

We'll text you when MarketPace goes live in your area!

Reply STOP to opt out anytime.
- The MarketPace Team`, firstName(fullName), city)
}

// WelcomeBackMessage is the text sent when an existing account signs up
// again and its profile is overwritten.
func WelcomeBackMessage(fullName, city, accountType, businessName string) string {
	businessLine := ""
	if accountType == "dual" && businessName != "" {
		businessLine = fmt.Sprintf(" Your business '%s' is now part of the MarketPace community!", businessName)
	}
	return fmt.Sprintf(`🎉 Welcome back to MarketPace, %s!%s

Your account has been updated and is ready to go. Browse local listings and connect with your %s community any time.

- The MarketPace Team`, fullName, businessLine, city)
}

// LaunchMessage is the go-live text for a city.
func LaunchMessage(fullName, city string) string {
	return fmt.Sprintf(`🚀 MARKETPACE IS LIVE in %s!

Hi %s, the wait is over! MarketPace is now available in your area.

🎉 Your Early Supporter Benefits Are Active:
• Lifetime Pro membership
• Special founder badge
• All features unlocked
• Priority delivery opportunities

Download the app or visit MarketPace.shop to start connecting with your community!

Thanks for believing in local commerce.
- Brooke & The MarketPace Team`, strings.ToUpper(city), firstName(fullName))
}

// ResetCodeMessage is the body carrying a password reset code, used for
// both SMS and email delivery.
func ResetCodeMessage(code string) string {
	return fmt.Sprintf("Your MarketPace password reset code is: %s. This code expires in 1 hour.", code)
}

// ResetCodeSubject is the email subject for reset-code delivery.
const ResetCodeSubject = "Your MarketPace password reset code"
