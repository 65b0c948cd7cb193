package entity

// ShippingStates lists the Algerian wilayas offered at checkout.
var ShippingStates = []string{
	"Adrar",
	"Chlef",
	"Laghouat",
	"Oum El Bouaghi",
	"Batna",
	"Béjaïa",
	"Bichar",
	"Blida",
	"Bouïra",
	"Tamanrasset",
	"Tébessa",
	"Tlemcen",
	"Tiaret",
	"Tizi Ouzou",
	"Alger",
	"Djelfa",
	"Jijel",
	"Sétif",
	"Saïda",
	"Skikda",
	"Sidi Belabbès",
	"Annaba",
	"Guelma",
	"Constantine",
	"Médéa",
	"Mostaganem",
	"M'Sila",
	"Mascara",
	"Ouargla",
	"Oran",
	"El Bayadh",
	"Illizi",
	"Bordj Bou Arréridj",
	"Boumerdès",
	"El Tarf",
	"Tindouf",
	"Tissemsilt",
	"El Oued",
	"Khenchela",
	"Souk Ahras",
	"Tipaza",
	"Mila",
	"Aïn Defla",
	"Naama",
	"Aïn Témouchent",
	"Ghardaïa",
	"Relizane",
}
