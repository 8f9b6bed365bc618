package pet

// Catalog is the starter inventory loaded on first boot.
var Catalog = []Pet{
	{Name: "Max", Breed: "Golden Retriever", Type: "Dogs", Gender: "Male", Color: "Golden", DOB: "2023-05-15", Price: 1200, Description: "Friendly and energetic puppy.", ImageURL: "https://picsum.photos/seed/dog1/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Happy Paws", BreederRating: 4.8, BreederReviews: 120, IsAvailable: 1},
	{Name: "Luna", Breed: "Persian Cat", Type: "Cats", Gender: "Female", Color: "White", DOB: "2023-08-20", Price: 800, Description: "Calm and affectionate companion.", ImageURL: "https://picsum.photos/seed/cat1/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Elite Felines", BreederRating: 4.9, BreederReviews: 85, IsAvailable: 1},
	{Name: "Charlie", Breed: "Beagle", Type: "Dogs", Gender: "Male", Color: "Tricolor", DOB: "2023-06-10", Price: 950, Description: "Curious and playful hound.", ImageURL: "https://picsum.photos/seed/dog2/800/800", HealthStatus: "Good", VaccinationStatus: "Up to date", BreederName: "Hound Haven", BreederRating: 4.5, BreederReviews: 60, IsAvailable: 1},
	{Name: "Bella", Breed: "French Bulldog", Type: "Dogs", Gender: "Female", Color: "Fawn", DOB: "2023-10-05", Price: 2500, Description: "Sweet and low-energy apartment dog.", ImageURL: "https://picsum.photos/seed/dog3/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Frenchie Friends", BreederRating: 5.0, BreederReviews: 45, IsAvailable: 1},
	{Name: "Oliver", Breed: "Maine Coon", Type: "Cats", Gender: "Male", Color: "Grey Tabby", DOB: "2023-04-12", Price: 1500, Description: "Gentle giant with a thick coat.", ImageURL: "https://picsum.photos/seed/cat2/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Giant Purrs", BreederRating: 4.7, BreederReviews: 90, IsAvailable: 1},
	{Name: "Sky", Breed: "Blue Gold Macaw", Type: "Birds", Gender: "Male", Color: "Blue/Yellow", DOB: "2022-12-01", Price: 3500, Description: "Highly intelligent and talkative.", ImageURL: "https://picsum.photos/seed/bird1/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Avian World", BreederRating: 4.6, BreederReviews: 30, IsAvailable: 1},
	{Name: "Daisy", Breed: "Holland Lop", Type: "Rabbits", Gender: "Female", Color: "White/Brown", DOB: "2023-11-15", Price: 150, Description: "Very soft and friendly rabbit.", ImageURL: "https://picsum.photos/seed/rabbit1/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Cooper", Breed: "Siberian Husky", Type: "Dogs", Gender: "Male", Color: "Black/White", DOB: "2023-07-22", Price: 1800, Description: "High energy and very vocal.", ImageURL: "https://picsum.photos/seed/dog4/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Arctic Pups", BreederRating: 4.9, BreederReviews: 75, IsAvailable: 1},
	{Name: "Milo", Breed: "British Shorthair", Type: "Cats", Gender: "Male", Color: "Blue", DOB: "2023-09-10", Price: 1200, Description: "Chunky and lovable house cat.", ImageURL: "https://picsum.photos/seed/cat3/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Royal Cats", BreederRating: 4.8, BreederReviews: 40, IsAvailable: 1},
	{Name: "Sunny", Breed: "Cockatiel", Type: "Birds", Gender: "Female", Color: "Yellow/Grey", DOB: "2024-01-05", Price: 250, Description: "Sweet and musical bird.", ImageURL: "https://picsum.photos/seed/bird2/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Feathered Friends", BreederRating: 4.7, BreederReviews: 15, IsAvailable: 1},
	{Name: "Thumper", Breed: "Mini Rex", Type: "Rabbits", Gender: "Male", Color: "Castor", DOB: "2023-12-12", Price: 120, Description: "Velvety fur and very calm.", ImageURL: "https://picsum.photos/seed/rabbit2/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 20, IsAvailable: 1},
	{Name: "Goldie", Breed: "Fantail Goldfish", Type: "Fish", Gender: "Female", Color: "Orange", DOB: "2024-02-01", Price: 25, Description: "Beautiful flowing fins.", ImageURL: "https://picsum.photos/seed/fish1/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Rio", Breed: "African Grey Parrot", Type: "Birds", Gender: "Male", Color: "Grey", DOB: "2023-01-15", Price: 2200, Description: "Incredible mimic and very smart.", ImageURL: "https://picsum.photos/seed/parrot1/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Avian World", BreederRating: 4.6, BreederReviews: 30, IsAvailable: 1},
	{Name: "Snowy", Breed: "Netherland Dwarf", Type: "Rabbits", Gender: "Female", Color: "White", DOB: "2024-01-20", Price: 180, Description: "Tiny and adorable bunny.", ImageURL: "https://picsum.photos/seed/bunny3/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Bubbles", Breed: "Koi Fish", Type: "Fish", Gender: "Male", Color: "Red/White", DOB: "2023-11-01", Price: 45, Description: "Graceful and elegant pond fish.", ImageURL: "https://picsum.photos/seed/koi1/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Zazu", Breed: "Hornbill", Type: "Birds", Gender: "Male", Color: "Blue/White", DOB: "2023-05-12", Price: 850, Description: "Very talkative and loyal bird.", ImageURL: "https://picsum.photos/seed/bird3/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Avian World", BreederRating: 4.6, BreederReviews: 30, IsAvailable: 1},
	{Name: "Peter", Breed: "Angora Rabbit", Type: "Rabbits", Gender: "Male", Color: "White", DOB: "2024-02-15", Price: 200, Description: "Extremely fluffy and soft.", ImageURL: "https://picsum.photos/seed/rabbit3/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Nemo", Breed: "Clownfish", Type: "Fish", Gender: "Male", Color: "Orange/White", DOB: "2024-01-10", Price: 35, Description: "Iconic and vibrant reef fish.", ImageURL: "https://picsum.photos/seed/fish2/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Dory", Breed: "Blue Tang", Type: "Fish", Gender: "Female", Color: "Blue/Yellow", DOB: "2023-12-05", Price: 65, Description: "Beautiful and active swimmer.", ImageURL: "https://picsum.photos/seed/fish3/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Mango", Breed: "Sun Conure", Type: "Birds", Gender: "Female", Color: "Orange/Yellow", DOB: "2023-08-20", Price: 600, Description: "Vibrant colors and very playful.", ImageURL: "https://picsum.photos/seed/bird4/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Feathered Friends", BreederRating: 4.7, BreederReviews: 20, IsAvailable: 1},
	{Name: "Flopsy", Breed: "English Spot", Type: "Rabbits", Gender: "Female", Color: "White/Black", DOB: "2023-10-10", Price: 130, Description: "Energetic and friendly rabbit.", ImageURL: "https://picsum.photos/seed/rabbit4/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Finley", Breed: "Betta Fish", Type: "Fish", Gender: "Male", Color: "Deep Blue", DOB: "2024-03-01", Price: 15, Description: "Stunning long fins and bold color.", ImageURL: "https://picsum.photos/seed/fish4/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Buddy", Breed: "Beagle", Type: "Dogs", Gender: "Male", Color: "Brown/White", DOB: "2023-11-20", Price: 700, Description: "Energetic and friendly beagle.", ImageURL: "https://picsum.photos/seed/dog5/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Happy Paws", BreederRating: 4.8, BreederReviews: 120, IsAvailable: 1},
	{Name: "Simba", Breed: "Bengal Cat", Type: "Cats", Gender: "Male", Color: "Spotted", DOB: "2023-06-15", Price: 2000, Description: "Exotic looking and very active.", ImageURL: "https://picsum.photos/seed/cat4/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Elite Felines", BreederRating: 4.9, BreederReviews: 85, IsAvailable: 1},
	{Name: "Kiwi", Breed: "Lovebird", Type: "Birds", Gender: "Female", Color: "Green/Peach", DOB: "2024-02-10", Price: 150, Description: "Small, colorful, and very social.", ImageURL: "https://picsum.photos/seed/bird5/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Feathered Friends", BreederRating: 4.7, BreederReviews: 20, IsAvailable: 1},
	{Name: "Clover", Breed: "Lionhead Rabbit", Type: "Rabbits", Gender: "Female", Color: "Grey", DOB: "2023-12-01", Price: 110, Description: "Distinctive mane and very sweet.", ImageURL: "https://picsum.photos/seed/rabbit5/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Shadow", Breed: "Black Moor Goldfish", Type: "Fish", Gender: "Male", Color: "Black", DOB: "2024-01-15", Price: 20, Description: "Unique telescopic eyes and velvety black color.", ImageURL: "https://picsum.photos/seed/fish5/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Rex", Breed: "German Shepherd", Type: "Dogs", Gender: "Male", Color: "Black/Tan", DOB: "2023-03-10", Price: 1500, Description: "Intelligent, brave, and highly trainable.", ImageURL: "https://picsum.photos/seed/dog6/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Guardian K9s", BreederRating: 4.7, BreederReviews: 55, IsAvailable: 1},
	{Name: "Coco", Breed: "Poodle", Type: "Dogs", Gender: "Female", Color: "Chocolate", DOB: "2023-12-05", Price: 1800, Description: "Elegant and very smart companion.", ImageURL: "https://picsum.photos/seed/dog7/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Poodle Palace", BreederRating: 4.9, BreederReviews: 40, IsAvailable: 1},
	{Name: "Whiskers", Breed: "Siamese Cat", Type: "Cats", Gender: "Female", Color: "Cream/Seal", DOB: "2023-11-12", Price: 900, Description: "Vocal and very affectionate.", ImageURL: "https://picsum.photos/seed/cat5/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Elite Felines", BreederRating: 4.9, BreederReviews: 85, IsAvailable: 1},
	{Name: "Ginger", Breed: "Abyssinian", Type: "Cats", Gender: "Female", Color: "Ruddy", DOB: "2023-08-15", Price: 1100, Description: "Active and curious explorer.", ImageURL: "https://picsum.photos/seed/cat6/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Elite Felines", BreederRating: 4.9, BreederReviews: 85, IsAvailable: 1},
	{Name: "Bluey", Breed: "Budgerigar", Type: "Birds", Gender: "Male", Color: "Blue", DOB: "2024-03-01", Price: 45, Description: "Cheerful and easy to care for.", ImageURL: "https://picsum.photos/seed/bird6/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Feathered Friends", BreederRating: 4.7, BreederReviews: 20, IsAvailable: 1},
	{Name: "Peaches", Breed: "Rosy-faced Lovebird", Type: "Birds", Gender: "Female", Color: "Green/Peach", DOB: "2023-10-20", Price: 120, Description: "Sweet-natured and colorful.", ImageURL: "https://picsum.photos/seed/bird7/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Feathered Friends", BreederRating: 4.7, BreederReviews: 20, IsAvailable: 1},
	{Name: "Bugs", Breed: "Flemish Giant", Type: "Rabbits", Gender: "Male", Color: "Sandy", DOB: "2023-05-10", Price: 250, Description: "The gentle giant of the rabbit world.", ImageURL: "https://picsum.photos/seed/rabbit6/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Mochi", Breed: "Mini Lop", Type: "Rabbits", Gender: "Female", Color: "Broken Orange", DOB: "2024-01-05", Price: 140, Description: "Adorable floppy ears and sweet personality.", ImageURL: "https://picsum.photos/seed/rabbit7/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Bunny Barn", BreederRating: 4.8, BreederReviews: 25, IsAvailable: 1},
	{Name: "Sparky", Breed: "Neon Tetra", Type: "Fish", Gender: "Male", Color: "Blue/Red", DOB: "2024-02-20", Price: 5, Description: "Small, glowing schooling fish.", ImageURL: "https://picsum.photos/seed/fish6/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Glimmer", Breed: "Guppy", Type: "Fish", Gender: "Female", Color: "Rainbow", DOB: "2024-03-10", Price: 8, Description: "Hardy and very colorful.", ImageURL: "https://picsum.photos/seed/fish7/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Oscar", Breed: "Tiger Oscar", Type: "Fish", Gender: "Male", Color: "Black/Orange", DOB: "2023-09-15", Price: 55, Description: "Large, intelligent, and full of personality.", ImageURL: "https://picsum.photos/seed/fish8/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Angel", Breed: "Angelfish", Type: "Fish", Gender: "Female", Color: "Silver/Black", DOB: "2024-01-20", Price: 30, Description: "Graceful and majestic swimmer.", ImageURL: "https://picsum.photos/seed/fish9/800/800", HealthStatus: "Excellent", VaccinationStatus: "N/A", BreederName: "Aqua Life", BreederRating: 4.5, BreederReviews: 10, IsAvailable: 1},
	{Name: "Spike", Breed: "Bulldog", Type: "Dogs", Gender: "Male", Color: "White/Brindle", DOB: "2023-02-14", Price: 2800, Description: "Courageous and kind, a true friend.", ImageURL: "https://picsum.photos/seed/dog8/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Guardian K9s", BreederRating: 4.7, BreederReviews: 55, IsAvailable: 1},
	{Name: "Mittens", Breed: "Ragdoll", Type: "Cats", Gender: "Female", Color: "Pointed Blue", DOB: "2023-12-25", Price: 1600, Description: "Docile and affectionate lap cat.", ImageURL: "https://picsum.photos/seed/cat7/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Elite Felines", BreederRating: 4.9, BreederReviews: 85, IsAvailable: 1},
	{Name: "Sold Out Pup", Breed: "Pug", Type: "Dogs", Gender: "Male", Color: "Fawn", DOB: "2023-01-01", Price: 500, Description: "Already found a home.", ImageURL: "https://picsum.photos/seed/dog9/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Happy Paws", BreederRating: 4.8, BreederReviews: 120, IsAvailable: 0},
	{Name: "Adopted Kitty", Breed: "Tabby", Type: "Cats", Gender: "Female", Color: "Orange", DOB: "2023-01-01", Price: 100, Description: "Already found a home.", ImageURL: "https://picsum.photos/seed/cat8/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Elite Felines", BreederRating: 4.9, BreederReviews: 85, IsAvailable: 0},
	{Name: "Reserved Bird", Breed: "Canary", Type: "Birds", Gender: "Male", Color: "Yellow", DOB: "2023-01-01", Price: 50, Description: "Reserved for a customer.", ImageURL: "https://picsum.photos/seed/bird8/800/800", HealthStatus: "Excellent", VaccinationStatus: "Up to date", BreederName: "Feathered Friends", BreederRating: 4.7, BreederReviews: 20, IsAvailable: 0},
}
