package notifier

import (
	"time"

	"github.com/google/uuid"
)

// Message is a portal notification pushed to connected clients.
type Message struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
	Time    time.Time `json:"time"`
}

// demoMessages is the rotating feed published while the notifier runs.
// Real mailbox integration is out of scope; the feed demonstrates the
// push channel end to end.
var demoMessages = []Message{
	{
		From:    "Gemeente Den Haag",
		Subject: "Statusupdate aanvraag",
		Content: "Uw subsidieaanvraag is in behandeling genomen. U ontvangt binnen tien werkdagen bericht.",
	},
	{
		From:    "RVO",
		Subject: "Nieuwe openstelling",
		Content: "De regeling Duurzame Innovatie is opnieuw opengesteld. Aanvragen kan tot het budget is uitgeput.",
	},
	{
		From:    "Kamer van Koophandel",
		Subject: "Controleer uw bedrijfsgegevens",
		Content: "Uw inschrijving wordt jaarlijks geverifieerd. Controleer of uw vestigingsadres nog klopt.",
	},
	{
		From:    "Ondernemersloket",
		Subject: "Nieuwe kansen in uw regio",
		Content: "Er zijn nieuwe regionale kansen toegevoegd die passen bij uw sector. Bekijk ze in het portaal.",
	},
}

// nextMessage returns the demo message at the given rotation index with a
// fresh ID and timestamp.
func nextMessage(i int) Message {
	m := demoMessages[i%len(demoMessages)]
	m.ID = uuid.New().String()
	m.Time = time.Now()
	return m
}
