package environment

// Type is the usage category of a room. Value 5 is unassigned.
type Type int

const (
	OfficesAndClassrooms                              Type = 0
	Bedrooms                                          Type = 1
	KitchensAndDiningRooms                            Type = 2
	BathroomsAndOtherFacilities                       Type = 3
	Various                                           Type = 4
	ShopsAndCommercialEstablishments                  Type = 6
	RestaurantsCafeteriasBarsAndHotels                Type = 7
	WaitingRoomsAndCommunalAreas                      Type = 8
	MachineRoomsAndEquipment                          Type = 9
	BanksAndLibraries                                 Type = 10
	ChurchesAndTemples                                Type = 11
	Laboratories                                      Type = 12
	CorridorsStaircasesCirculationAreasAndLockerRooms Type = 13
	WarehousesDepositsAndStorageAreas                 Type = 14
	LaundriesAndWorkshops                             Type = 15
	MuseumsExhibitionsAndArtGalleries                 Type = 16
	AuditoriumsCinemasAndTheatres                     Type = 17
	Hospitals                                         Type = 18
	Garages                                           Type = 19
	GymsAndSportsFacilities                           Type = 20
	TransportTerminals                                Type = 21
)

const defaultLightDensity = 13.0

// LightDensity returns the recommended lighting load of the category in VA/m²,
// 13 VA/m² when unmapped.
func (t Type) LightDensity() float64 {
	switch t {
	case Garages:
		return 2
	case Bedrooms:
		return 4
	case MachineRoomsAndEquipment, LaundriesAndWorkshops:
		return 6
	case WaitingRoomsAndCommunalAreas, CorridorsStaircasesCirculationAreasAndLockerRooms:
		return 8
	case TransportTerminals:
		return 9
	case KitchensAndDiningRooms, BathroomsAndOtherFacilities, WarehousesDepositsAndStorageAreas:
		return 10
	case OfficesAndClassrooms, RestaurantsCafeteriasBarsAndHotels:
		return 12
	case MuseumsExhibitionsAndArtGalleries:
		return 13
	case Various, ChurchesAndTemples:
		return 14
	case ShopsAndCommercialEstablishments, BanksAndLibraries:
		return 15
	case Hospitals:
		return 16
	case AuditoriumsCinemasAndTheatres:
		return 18
	case Laboratories, GymsAndSportsFacilities:
		return 20
	default:
		return defaultLightDensity
	}
}

func (t Type) String() string {
	switch t {
	case OfficesAndClassrooms:
		return "OFFICES_AND_CLASSROOMS"
	case Bedrooms:
		return "BEDROOMS"
	case KitchensAndDiningRooms:
		return "KITCHENS_AND_DINING_ROOMS"
	case BathroomsAndOtherFacilities:
		return "BATHROOMS_AND_OTHER_FACILITIES"
	case Various:
		return "VARIOUS"
	case ShopsAndCommercialEstablishments:
		return "SHOPS_AND_COMMERCIAL_ESTABLISHMENTS"
	case RestaurantsCafeteriasBarsAndHotels:
		return "RESTAURANTS_CAFETERIAS_BARS_AND_HOTELS"
	case WaitingRoomsAndCommunalAreas:
		return "WAITING_ROOMS_AND_COMMUNAL_AREAS"
	case MachineRoomsAndEquipment:
		return "MACHINE_ROOMS_AND_EQUIPMENT"
	case BanksAndLibraries:
		return "BANKS_AND_LIBRARIES"
	case ChurchesAndTemples:
		return "CHURCHES_AND_TEMPLES"
	case Laboratories:
		return "LABORATORIES"
	case CorridorsStaircasesCirculationAreasAndLockerRooms:
		return "CORRIDORS_STAIRCASES_CIRCULATION_AREAS_AND_LOCKER_ROOMS"
	case WarehousesDepositsAndStorageAreas:
		return "WAREHOUSES_DEPOSITS_AND_STORAGE_AREAS"
	case LaundriesAndWorkshops:
		return "LAUNDRIES_AND_WORKSHOPS"
	case MuseumsExhibitionsAndArtGalleries:
		return "MUSEUMS_EXHIBITIONS_AND_ART_GALLERIES"
	case AuditoriumsCinemasAndTheatres:
		return "AUDITORIUMS_CINEMAS_AND_THEATRES"
	case Hospitals:
		return "HOSPITALS"
	case Garages:
		return "GARAGES"
	case GymsAndSportsFacilities:
		return "GYMS_AND_SPORTS_FACILITIES"
	case TransportTerminals:
		return "TRANSPORT_TERMINALS"
	default:
		return "UNKNOWN"
	}
}
