package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type quoteItemRecord struct {
	Concepto       string `dynamodbav:"concepto"`
	Cantidad       int    `dynamodbav:"cantidad"`
	PrecioUnitario string `dynamodbav:"precio_unitario"`
	Subtotal       string `dynamodbav:"subtotal"`
}

type leadItem struct {
	ID                  string   `dynamodbav:"id"`
	NombreCliente       string   `dynamodbav:"nombre_cliente"`
	Whatsapp            string   `dynamodbav:"whatsapp"`
	DescripcionProyecto string   `dynamodbav:"descripcion_proyecto"`
	Servicio            string   `dynamodbav:"servicio"`
	ClienteID           string   `dynamodbav:"cliente_id"`
	Zona                string   `dynamodbav:"zona,omitempty"`
	UbicacionLat        float64  `dynamodbav:"ubicacion_lat"`
	UbicacionLng        float64  `dynamodbav:"ubicacion_lng"`
	UbicacionDireccion  string   `dynamodbav:"ubicacion_direccion,omitempty"`
	ImagenURL           string   `dynamodbav:"imagen_url,omitempty"`
	PhotosURLs          []string `dynamodbav:"photos_urls,omitempty"`
	PriorityBoost       bool     `dynamodbav:"priority_boost"`

	DisciplinaIA  string `dynamodbav:"disciplina_ia,omitempty"`
	UrgenciaIA    int    `dynamodbav:"urgencia_ia,omitempty"`
	DiagnosticoIA string `dynamodbav:"diagnostico_ia,omitempty"`

	AISuggestedPriceMin string `dynamodbav:"ai_suggested_price_min,omitempty"`
	AISuggestedPriceMax string `dynamodbav:"ai_suggested_price_max,omitempty"`
	PriceRationale      string `dynamodbav:"price_rationale,omitempty"`

	NegotiationStatus     string            `dynamodbav:"negotiation_status"`
	ProfesionalAsignadoID string            `dynamodbav:"profesional_asignado_id,omitempty"`
	AgreedPrice           string            `dynamodbav:"agreed_price,omitempty"`
	AgreedScope           string            `dynamodbav:"agreed_scope,omitempty"`
	AgreedAt              string            `dynamodbav:"agreed_at,omitempty"`
	AgreedBy              string            `dynamodbav:"agreed_by,omitempty"`
	QuoteItems            []quoteItemRecord `dynamodbav:"quote_items,omitempty"`
	QuoteTotal            string            `dynamodbav:"quote_total,omitempty"`
	QuoteSentAt           string            `dynamodbav:"quote_sent_at,omitempty"`
	QuoteSentBy           string            `dynamodbav:"quote_sent_by,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The negotiation ledger is flattened into the lead item so every transition
// is one UpdateItem guarded on negotiation_status. Two racing transitions can
// never both pass the guard; the loser gets ErrStatusConflict.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client, tableName string) *LeadDynamoRepository {
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(lead))
	if err != nil {
		return entities.Lead{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) MarkContacted(ctx context.Context, id string, expected []entities.NegotiationStatus) (entities.Lead, error) {
	return r.transition(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #negotiation_status = :new_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":new_status": &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusContactado)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LeadDynamoRepository) AssignProfessional(ctx context.Context, id, professionalID string, expected []entities.NegotiationStatus) (entities.Lead, error) {
	return r.transition(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #negotiation_status = :new_status, #profesional_asignado_id = :professional_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":new_status":      &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusAsignado)},
			":professional_id": &types.AttributeValueMemberS{Value: professionalID},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#profesional_asignado_id": "profesional_asignado_id",
			"#updated_at":              "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LeadDynamoRepository) ConfirmAgreement(ctx context.Context, id string, expected []entities.NegotiationStatus, agreement entities.Agreement) (entities.Lead, error) {
	return r.transition(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #negotiation_status = :new_status, #agreed_price = :agreed_price, #agreed_scope = :agreed_scope, " +
			"#agreed_at = :agreed_at, #agreed_by = :agreed_by, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":new_status":   &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusAcuerdoConfirmado)},
			":agreed_price": &types.AttributeValueMemberS{Value: agreement.Price.String()},
			":agreed_scope": &types.AttributeValueMemberS{Value: agreement.Scope},
			":agreed_at":    &types.AttributeValueMemberS{Value: agreement.At.UTC().Format(time.RFC3339Nano)},
			":agreed_by":    &types.AttributeValueMemberS{Value: agreement.By},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#agreed_price": "agreed_price",
			"#agreed_scope": "agreed_scope",
			"#agreed_at":    "agreed_at",
			"#agreed_by":    "agreed_by",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LeadDynamoRepository) SendQuote(ctx context.Context, id string, expected []entities.NegotiationStatus, quote entities.QuoteSubmission) (entities.Lead, error) {
	records := make([]quoteItemRecord, 0, len(quote.Items))
	for _, item := range quote.Items {
		records = append(records, quoteItemRecord{
			Concepto:       item.Concepto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario.String(),
			Subtotal:       item.Subtotal.String(),
		})
	}
	itemsAV, err := attributevalue.Marshal(records)
	if err != nil {
		return entities.Lead{}, err
	}

	return r.transition(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #negotiation_status = :new_status, #quote_items = :quote_items, #quote_total = :quote_total, " +
			"#quote_sent_at = :quote_sent_at, #quote_sent_by = :quote_sent_by, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":new_status":    &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusPropuestaEnviada)},
			":quote_items":   itemsAV,
			":quote_total":   &types.AttributeValueMemberS{Value: quote.Total.String()},
			":quote_sent_at": &types.AttributeValueMemberS{Value: quote.At.UTC().Format(time.RFC3339Nano)},
			":quote_sent_by": &types.AttributeValueMemberS{Value: quote.By},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quote_items":   "quote_items",
			"#quote_total":   "quote_total",
			"#quote_sent_at": "quote_sent_at",
			"#quote_sent_by": "quote_sent_by",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

// transition performs one status-guarded UpdateItem. The condition covers both
// existence and the expected statuses; a failed check surfaces as
// interfaces.ErrStatusConflict so use cases can report the race.
func (r *LeadDynamoRepository) transition(
	ctx context.Context,
	id string,
	expected []entities.NegotiationStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	condition, condValues := statusGuard(expected)
	for k, v := range condValues {
		values[k] = v
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":                 "id",
			"#negotiation_status": "negotiation_status",
		}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, interfaces.ErrStatusConflict
		}
		return entities.Lead{}, err
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func statusGuard(expected []entities.NegotiationStatus) (string, map[string]types.AttributeValue) {
	placeholders := make([]string, 0, len(expected))
	values := make(map[string]types.AttributeValue, len(expected))
	for i, status := range expected {
		ph := fmt.Sprintf(":expected_%d", i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(status)}
	}
	condition := fmt.Sprintf("attribute_exists(#id) AND #negotiation_status IN (%s)", strings.Join(placeholders, ", "))
	return condition, values
}

func toLeadItem(l entities.Lead) leadItem {
	records := make([]quoteItemRecord, 0, len(l.Negotiation.QuoteItems))
	for _, item := range l.Negotiation.QuoteItems {
		records = append(records, quoteItemRecord{
			Concepto:       item.Concepto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario.String(),
			Subtotal:       item.Subtotal.String(),
		})
	}
	return leadItem{
		ID:                  l.ID,
		NombreCliente:       l.NombreCliente,
		Whatsapp:            l.Whatsapp,
		DescripcionProyecto: l.DescripcionProyecto,
		Servicio:            l.Servicio,
		ClienteID:           l.ClienteID,
		Zona:                l.Zona,
		UbicacionLat:        l.UbicacionLat,
		UbicacionLng:        l.UbicacionLng,
		UbicacionDireccion:  l.UbicacionDireccion,
		ImagenURL:           l.ImagenURL,
		PhotosURLs:          l.PhotosURLs,
		PriorityBoost:       l.PriorityBoost,

		DisciplinaIA:  l.DisciplinaIA,
		UrgenciaIA:    l.UrgenciaIA,
		DiagnosticoIA: l.DiagnosticoIA,

		AISuggestedPriceMin: decimalToString(l.AISuggestedPriceMin),
		AISuggestedPriceMax: decimalToString(l.AISuggestedPriceMax),
		PriceRationale:      l.PriceRationale,

		NegotiationStatus:     string(l.Negotiation.Status),
		ProfesionalAsignadoID: l.Negotiation.ProfesionalAsignadoID,
		AgreedPrice:           decimalToString(l.Negotiation.AgreedPrice),
		AgreedScope:           l.Negotiation.AgreedScope,
		AgreedAt:              timeToString(l.Negotiation.AgreedAt),
		AgreedBy:              l.Negotiation.AgreedBy,
		QuoteItems:            records,
		QuoteTotal:            decimalToString(l.Negotiation.QuoteTotal),
		QuoteSentAt:           timeToString(l.Negotiation.QuoteSentAt),
		QuoteSentBy:           l.Negotiation.QuoteSentBy,

		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	items := make([]entities.QuoteItem, 0, len(it.QuoteItems))
	for _, rec := range it.QuoteItems {
		unit, _ := decimal.NewFromString(rec.PrecioUnitario)
		subtotal, _ := decimal.NewFromString(rec.Subtotal)
		items = append(items, entities.QuoteItem{
			Concepto:       rec.Concepto,
			Cantidad:       rec.Cantidad,
			PrecioUnitario: unit,
			Subtotal:       subtotal,
		})
	}
	if len(items) == 0 {
		items = nil
	}

	return entities.Lead{
		ID:                  it.ID,
		NombreCliente:       it.NombreCliente,
		Whatsapp:            it.Whatsapp,
		DescripcionProyecto: it.DescripcionProyecto,
		Servicio:            it.Servicio,
		ClienteID:           it.ClienteID,
		Zona:                it.Zona,
		UbicacionLat:        it.UbicacionLat,
		UbicacionLng:        it.UbicacionLng,
		UbicacionDireccion:  it.UbicacionDireccion,
		ImagenURL:           it.ImagenURL,
		PhotosURLs:          it.PhotosURLs,
		PriorityBoost:       it.PriorityBoost,

		DisciplinaIA:  it.DisciplinaIA,
		UrgenciaIA:    it.UrgenciaIA,
		DiagnosticoIA: it.DiagnosticoIA,

		AISuggestedPriceMin: stringToDecimal(it.AISuggestedPriceMin),
		AISuggestedPriceMax: stringToDecimal(it.AISuggestedPriceMax),
		PriceRationale:      it.PriceRationale,

		Negotiation: entities.NegotiationLedger{
			Status:                entities.NegotiationStatus(it.NegotiationStatus),
			ProfesionalAsignadoID: it.ProfesionalAsignadoID,
			AgreedPrice:           stringToDecimal(it.AgreedPrice),
			AgreedScope:           it.AgreedScope,
			AgreedAt:              stringToTime(it.AgreedAt),
			AgreedBy:              it.AgreedBy,
			QuoteItems:            items,
			QuoteTotal:            stringToDecimal(it.QuoteTotal),
			QuoteSentAt:           stringToTime(it.QuoteSentAt),
			QuoteSentBy:           it.QuoteSentBy,
		},

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
