package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// StageNotifier define o contrato de notificação (email hoje, o canal que
// for amanhã).
type StageNotifier interface {
	SendStageResult(to, salespersonName, leadName, company string) error
}

// SalespersonDirectory resolve o vendedor do payload. Referência fraca:
// o vendedor pode ter sido deletado entre o publish e o consume.
type SalespersonDirectory interface {
	FindSalesperson(id string) (*entity.Salesperson, bool)
}

type Worker struct {
	Channel   *amqp.Channel
	Notifier  StageNotifier
	Directory SalespersonDirectory
}

func NewWorker(ch *amqp.Channel, notifier StageNotifier, directory SalespersonDirectory) *Worker {
	return &Worker{
		Channel:   ch,
		Notifier:  notifier,
		Directory: directory,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload StageChangePayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Lead %s: %s → %s", payload.LeadName, payload.FromStage, payload.ToStage)

			if err := w.processStageChange(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao notificar: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

// processStageChange só age quando o lead chega em Result: avisa o vendedor
// responsável. Todo o resto é ack silencioso.
func (w *Worker) processStageChange(payload StageChangePayload) error {
	if payload.ToStage != string(entity.StageResult) {
		return nil
	}

	if payload.AssignedTo == "" {
		log.Printf("⚠️ [WORKER] Lead %s fechou sem vendedor atribuído", payload.LeadName)
		return nil
	}

	salesperson, found := w.Directory.FindSalesperson(payload.AssignedTo)
	if !found {
		// Vendedor deletado depois do move. Ack mesmo assim, não há o que
		// retentar aqui.
		log.Printf("⚠️ [WORKER] Vendedor %s não existe mais, pulando notificação", payload.AssignedTo)
		return nil
	}

	log.Printf("🏆 [WORKER] Lead %s chegou em Result, notificando %s", payload.LeadName, salesperson.Name)
	return w.Notifier.SendStageResult(salesperson.Email, salesperson.Name, payload.LeadName, payload.Company)
}
