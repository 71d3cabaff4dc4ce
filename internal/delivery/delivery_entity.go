package delivery

import "fmt"

const defaultBodyFooter = "This is an automated email from the Al Laith PMO System."

type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Message struct {
	To         []string
	Cc         []string
	Subject    string
	Body       string
	Attachment *Attachment
}

// DefaultSubject and DefaultBody are used when the sender leaves them blank.
func DefaultSubject(title, reportName string) string {
	return fmt.Sprintf("%s - %s", title, reportName)
}

func DefaultBody(title, reportName string) string {
	return fmt.Sprintf("Please find attached %s - %s\n%s", title, reportName, defaultBodyFooter)
}
