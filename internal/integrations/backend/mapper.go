package backend

import (
	"tire-service/internal/entities"
	"tire-service/internal/pricing"
)

// ToPricingService переводит услугу бэкенда в услугу прайса.
// Если бэкенд не прислал вид услуги, он восстанавливается по названию.
func ToPricingService(s entities.Service) pricing.Service {
	kind, wheel := pricing.ClassifyServiceName(s.Name)
	if s.Kind.Valid {
		switch k := pricing.ServiceKind(s.Kind.String); k {
		case pricing.KindGeneric, pricing.KindMount, pricing.KindDismount:
			kind = k
			wheel = pricing.WheelAny
			if kind != pricing.KindGeneric && s.WheelType.Valid {
				wheel = pricing.WheelType(s.WheelType.String)
			}
		}
	}
	return pricing.Service{
		ID:         s.ID,
		Name:       s.Name,
		Kind:       kind,
		AppliesTo:  wheel,
		Price:      s.Price,
		ContractID: s.ContractID,
	}
}

func ToCatalogue(contractID int64, services []entities.Service) *pricing.Catalogue {
	mapped := make([]pricing.Service, 0, len(services))
	for _, s := range services {
		mapped = append(mapped, ToPricingService(s))
	}
	return pricing.NewCatalogue(contractID, mapped)
}
