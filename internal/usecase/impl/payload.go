package impl

import (
	"fmt"
	"time"

	"petkeeper/config"
	"petkeeper/internal/domain/entity"
)

// Data keys shared with the mobile client.
const (
	dataKeyType                 = "type"
	dataKeyPetID                = "petId"
	dataKeyTaskTitle            = "taskTitle"
	dataKeyVaccineName          = "vaccineName"
	dataKeyDueDate              = "dueDate"
	dataKeyPetName              = "petName"
	dataKeyPetSpecies           = "petSpecies"
	dataKeyMessage              = "message"
	dataKeyCreatedByDisplayName = "createdByDisplayName"
	dataKeyCompletedBy          = "completedByDisplayName"
	dataKeySentBy               = "sentByDisplayName"

	isoDateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// payloadSender carries the resolved names a template may need.
type payloadSender struct {
	DisplayName string
	PetName     string // Resolved pet name for pet-scoped kinds.
}

// payloadComposer turns a family event into the message shown on devices.
type payloadComposer struct {
	cfg *config.NotificationConfig
}

func newPayloadComposer(cfg *config.NotificationConfig) *payloadComposer {
	if cfg == nil {
		cfg = config.DefaultNotificationConfig()
	}

	return &payloadComposer{cfg: cfg}
}

// Compose builds the payload for event. The event must already be validated.
func (p *payloadComposer) Compose(event *entity.FamilyEvent, sender payloadSender) *entity.NotificationPayload {
	data := map[string]string{
		dataKeyType: string(event.Kind),
	}

	payload := &entity.NotificationPayload{Data: data}

	switch event.Kind {
	case entity.EventKindNewTask:
		payload.Title = p.title(sender.PetName)
		payload.Body = fmt.Sprintf("%s - %s", event.TaskTitle, sender.DisplayName)
		message := event.Message
		if message == "" {
			message = fmt.Sprintf("Uma nova tarefa foi adicionada para %s.", sender.PetName)
		}
		data[dataKeyPetID] = event.PetID
		data[dataKeyTaskTitle] = event.TaskTitle
		data[dataKeyCreatedByDisplayName] = sender.DisplayName
		data[dataKeyMessage] = message

	case entity.EventKindOverdueTask:
		payload.Title = p.title(sender.PetName)
		payload.Body = fmt.Sprintf("Tarefa vencida: %s estava prevista para %s", event.TaskTitle, p.date(event.DueDate))
		data[dataKeyPetID] = event.PetID
		data[dataKeyTaskTitle] = event.TaskTitle
		data[dataKeyDueDate] = isoDate(event.DueDate)
		data[dataKeyCreatedByDisplayName] = sender.DisplayName

	case entity.EventKindNewVaccine:
		payload.Title = p.title(sender.PetName)
		payload.Body = fmt.Sprintf("Nova vacina: %s agendada para %s", event.VaccineName, p.date(event.DueDate))
		data[dataKeyPetID] = event.PetID
		data[dataKeyVaccineName] = event.VaccineName
		data[dataKeyDueDate] = isoDate(event.DueDate)
		data[dataKeyCreatedByDisplayName] = sender.DisplayName

	case entity.EventKindNewPet:
		payload.Title = p.title(event.PetName)
		payload.Body = fmt.Sprintf("%s (%s) foi adicionado por %s!", event.PetName, event.PetSpecies, sender.DisplayName)
		data[dataKeyPetName] = event.PetName
		data[dataKeyPetSpecies] = event.PetSpecies
		data[dataKeyCreatedByDisplayName] = sender.DisplayName

	case entity.EventKindTaskCompleted:
		payload.Title = p.title(sender.PetName)
		payload.Body = fmt.Sprintf("Tarefa concluída: %s por %s", event.TaskTitle, sender.DisplayName)
		data[dataKeyPetID] = event.PetID
		data[dataKeyTaskTitle] = event.TaskTitle
		data[dataKeyCompletedBy] = sender.DisplayName

	case entity.EventKindCustomMessage:
		payload.Title = event.Title
		if payload.Title == "" {
			payload.Title = p.title("Mensagem de " + sender.DisplayName)
		}
		payload.Body = event.Message
		data[dataKeyMessage] = event.Message
		data[dataKeySentBy] = sender.DisplayName
	}

	return payload
}

func (p *payloadComposer) title(subject string) string {
	return p.cfg.TitlePrefix + ": " + subject
}

func (p *payloadComposer) date(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.UTC().Format(p.cfg.DateLayout)
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.UTC().Format(isoDateLayout)
}
