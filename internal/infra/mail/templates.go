package mail

import (
	"fmt"
	"html"
	"strings"
)

type Contact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type JoinRequest struct {
	Name  string
	Email string
	Phone string
	Plan  string
}

func ContactMessage(to string, c Contact) Message {
	return Message{
		To:      []string{to},
		Subject: "New contact enquiry from " + c.Name,
		HTML: table("New Contact Enquiry", [][2]string{
			{"Name", c.Name},
			{"Email", orDash(c.Email)},
			{"Phone", c.Phone},
			{"Message", c.Message},
		}),
		ReplyTo: c.Email,
	}
}

func JoinMessage(to string, j JoinRequest) Message {
	return Message{
		To:      []string{to},
		Subject: "New membership request from " + j.Name,
		HTML: table("New Join Request", [][2]string{
			{"Name", j.Name},
			{"Email", orDash(j.Email)},
			{"Phone", j.Phone},
			{"Plan", orDash(j.Plan)},
		}),
		ReplyTo: j.Email,
	}
}

func table(title string, rows [][2]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2><table>", html.EscapeString(title))
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>",
			html.EscapeString(r[0]), html.EscapeString(r[1]))
	}
	b.WriteString("</table>")
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
