package service

import "fmt"

func nudgeEmailTemplate(goalDescription, lastCheckInLabel, appName string) (string, string) {
	subject := "Your accountability buddy needs encouragement!"
	body := fmt.Sprintf(`Hi there!

Your accountability buddy hasn't checked in on their goal since %s.

Their goal: "%s"

Maybe send them a quick message of encouragement? Sometimes a simple
"How's your goal going?" can make all the difference!

---
You're receiving this because someone listed you as their accountability
buddy on %s.`, lastCheckInLabel, goalDescription, appName)

	return subject, body
}
